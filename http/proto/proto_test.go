package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	require.Equal(t, HTTP11, Parse("HTTP/1.1"))

	for _, token := range []string{
		"", "HTTP", "HTTP/", "HTTP/1.0", "HTTP/2", "HTTP/1.11", "HTTPS/1.1", "http/1.1", "HTTP/1.1/",
	} {
		require.Equal(t, Unknown, Parse(token), token)
	}
}
