package wireline

import (
	"io"
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wireline-web/wireline/http"
	"github.com/wireline-web/wireline/http/method"
	"github.com/wireline-web/wireline/router"
	"github.com/wireline-web/wireline/router/simple"
)

// recordingHandler accumulates observed request bodies. It is invoked
// concurrently from independent connections, hence the lock.
type recordingHandler struct {
	mu     sync.Mutex
	bodies []string
}

func (r *recordingHandler) router() router.Router {
	return simple.NewRouter(func(request *http.Request) *http.Response {
		r.mu.Lock()
		r.bodies = append(r.bodies, request.Body.String())
		r.mu.Unlock()

		return http.NewResponse()
	}, nil)
}

func (r *recordingHandler) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.bodies...)
}

func startApp(t *testing.T, addr string, r router.Router) *App {
	started := make(chan struct{})
	app := New(addr).NotifyOnStart(func() {
		close(started)
	})

	go func() {
		_ = app.Serve(r)
	}()

	<-started
	t.Cleanup(func() {
		_ = app.Stop()
	})

	return app
}

func sendRequest(t *testing.T, addr, raw string) string {
	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer func() {
		_ = conn.Close()
	}()

	_, err = conn.Write([]byte(raw))
	require.NoError(t, err)

	response, err := io.ReadAll(conn)
	require.NoError(t, err)

	return string(response)
}

func TestEndToEnd(t *testing.T) {
	const addr = "localhost:16100"

	r := simple.NewRouter(func(request *http.Request) *http.Response {
		require.Equal(t, method.GET, request.Method)
		require.Equal(t, "/index.html", request.Target)

		return http.NewResponse().String("Hello from wireline")
	}, nil)
	startApp(t, addr, r)

	response := sendRequest(t, addr, "GET /index.html HTTP/1.1\r\n\r\n")
	require.Contains(t, response, "HTTP/1.1 200 OK")
	require.Contains(t, response, "Connection: close")
	require.Contains(t, response, "Hello from wireline")
}

func TestQueryEndToEnd(t *testing.T) {
	const addr = "localhost:16101"

	r := simple.NewRouter(func(request *http.Request) *http.Response {
		return http.NewResponse().String(request.Query.ValueOr("message", "nothing"))
	}, nil)
	startApp(t, addr, r)

	response := sendRequest(t, addr, "GET /query?message=hi+there HTTP/1.1\r\n\r\n")
	require.Contains(t, response, "hi there")
}

func TestConflictingContentLengthAndChunked(t *testing.T) {
	const addr = "localhost:16102"

	handler := new(recordingHandler)
	startApp(t, addr, handler.router())

	// Content-Length frames the body as "5\r\n", chunked framing as "ABCDE".
	// Silently trusting Content-Length is the smuggling-prone interpretation.
	raw := "POST / HTTP/1.1\r\n" +
		"Host: localhost\r\n" +
		"Content-Length: 3\r\n" +
		"Transfer-Encoding: chunked\r\n" +
		"\r\n" +
		"5\r\nABCDE\r\n0\r\n\r\n"

	response := sendRequest(t, addr, raw)
	require.Contains(t, response, "400 Bad Request")

	for _, body := range handler.recorded() {
		require.NotEqual(t, "5\r\n", body, "used Content-Length and ignored Transfer-Encoding")
	}
}

func TestDuplicateContentLength(t *testing.T) {
	const addr = "localhost:16103"

	handler := new(recordingHandler)
	startApp(t, addr, handler.router())

	raw := "POST / HTTP/1.1\r\n" +
		"Host: localhost\r\n" +
		"Content-Length: 5\r\n" +
		"Content-Length: 6\r\n" +
		"\r\n" +
		"ABCDEF"

	response := sendRequest(t, addr, raw)
	require.Contains(t, response, "400 Bad Request")
	require.Empty(t, handler.recorded())
}

func TestDuplicateTransferEncoding(t *testing.T) {
	const addr = "localhost:16104"

	handler := new(recordingHandler)
	startApp(t, addr, handler.router())

	raw := "POST / HTTP/1.1\r\n" +
		"Host: localhost\r\n" +
		"Transfer-Encoding: chunked\r\n" +
		"Transfer-Encoding: identity\r\n" +
		"\r\n" +
		"5\r\nABCDE\r\n0\r\n\r\n"

	response := sendRequest(t, addr, raw)
	require.Contains(t, response, "400 Bad Request")
	require.Empty(t, handler.recorded())
}

func TestChunkedEndToEnd(t *testing.T) {
	const addr = "localhost:16105"

	handler := new(recordingHandler)
	startApp(t, addr, handler.router())

	raw := "POST /upload HTTP/1.1\r\n" +
		"Transfer-Encoding: chunked\r\n" +
		"\r\n" +
		"5\r\nHello\r\n6\r\n World\r\n0\r\n\r\n"

	response := sendRequest(t, addr, raw)
	require.Contains(t, response, "200 OK")
	require.Equal(t, []string{"Hello World"}, handler.recorded())
}

func TestGracefulShutdown(t *testing.T) {
	const addr = "localhost:16106"

	handler := new(recordingHandler)
	app := startApp(t, addr, handler.router())

	require.NoError(t, app.GracefulShutdown())

	_, err := net.Dial("tcp", addr)
	require.Error(t, err)
}
