package http1

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wireline-web/wireline/http/method"
	"github.com/wireline-web/wireline/http/proto"
	"github.com/wireline-web/wireline/http/status"
)

func TestParseRequestLine(t *testing.T) {
	t.Run("all recognized methods round-trip", func(t *testing.T) {
		for _, m := range method.List {
			parsed, target, protocol, err := ParseRequestLine(m.String() + " /index.html HTTP/1.1")
			require.NoError(t, err)
			require.Equal(t, m, parsed)
			require.Equal(t, "/index.html", target)
			require.Equal(t, proto.HTTP11, protocol)
		}
	})

	t.Run("target is kept verbatim", func(t *testing.T) {
		_, target, _, err := ParseRequestLine("GET /search?q=hello%20world&lang=en HTTP/1.1")
		require.NoError(t, err)
		require.Equal(t, "/search?q=hello%20world&lang=en", target)
	})

	t.Run("unknown method", func(t *testing.T) {
		for _, line := range []string{
			"INVALID /path HTTP/1.1",
			"get /path HTTP/1.1",
			"HEAD /path HTTP/1.1",
		} {
			_, _, _, err := ParseRequestLine(line)
			require.ErrorIs(t, err, status.ErrMethodNotRecognized, line)
		}
	})

	t.Run("wrong token count", func(t *testing.T) {
		for _, line := range []string{
			"",
			"GET",
			"GET /path",
			"GET /path HTTP/1.1 extra",
		} {
			_, _, _, err := ParseRequestLine(line)
			require.ErrorIs(t, err, status.ErrBadRequestLine, line)
		}
	})

	t.Run("unsupported protocol", func(t *testing.T) {
		for _, line := range []string{
			"GET /path HTTPS/2.0",
			"GET /path HTTP/1.0",
			"GET /path HTTP/2",
			"GET /path HTTP1.1",
		} {
			_, _, _, err := ParseRequestLine(line)
			require.ErrorIs(t, err, status.ErrUnsupportedProtocol, line)
		}
	})
}
