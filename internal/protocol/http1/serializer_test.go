package http1

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wireline-web/wireline/http"
	"github.com/wireline-web/wireline/http/status"
)

func TestSerialize(t *testing.T) {
	t.Run("bodyless", func(t *testing.T) {
		resp := http.NewResponse()
		want := "HTTP/1.1 200 OK\r\nConnection: close\r\n\r\n"
		require.Equal(t, want, string(Serialize(resp.Expose(), nil)))
	})

	t.Run("body brings content-length", func(t *testing.T) {
		resp := http.NewResponse().String("Hello, World!")
		want := "HTTP/1.1 200 OK\r\nConnection: close\r\nContent-Length: 13\r\n\r\nHello, World!"
		require.Equal(t, want, string(Serialize(resp.Expose(), nil)))
	})

	t.Run("custom code and headers", func(t *testing.T) {
		resp := http.NewResponse().
			Code(status.NotFound).
			Header("Content-Type", "text/plain").
			String("nope")
		want := "HTTP/1.1 404 Not Found\r\nConnection: close\r\nContent-Length: 4\r\n" +
			"Content-Type: text/plain\r\n\r\nnope"
		require.Equal(t, want, string(Serialize(resp.Expose(), nil)))
	})

	t.Run("unknown code still renders", func(t *testing.T) {
		resp := http.NewResponse().Code(status.Code(799))
		want := "HTTP/1.1 799 Unknown Status Code\r\nConnection: close\r\n\r\n"
		require.Equal(t, want, string(Serialize(resp.Expose(), nil)))
	})

	t.Run("custom reason phrase", func(t *testing.T) {
		resp := http.NewResponse().Status("Everything Is Fine")
		want := "HTTP/1.1 200 Everything Is Fine\r\nConnection: close\r\n\r\n"
		require.Equal(t, want, string(Serialize(resp.Expose(), nil)))
	})

	t.Run("error responses carry the diagnostic", func(t *testing.T) {
		resp := http.Error(status.ErrBadChunk)
		want := "HTTP/1.1 400 Bad Request\r\nConnection: close\r\nContent-Length: 28\r\n" +
			"\r\nmalformed chunk-encoded data"
		require.Equal(t, want, string(Serialize(resp.Expose(), nil)))
	})
}
