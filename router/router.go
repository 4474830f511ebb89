package router

import "github.com/wireline-web/wireline/http"

// Router is the boundary between the connection machinery and the
// application. It owns no socket and does no I/O: requests come in fully
// parsed, and the returned response is serialized and written back by the
// server. Both methods are called concurrently from multiple connections, so
// any mutable state behind them needs its own synchronization.
type Router interface {
	// OnRequest handles a successfully parsed request.
	OnRequest(request *http.Request) *http.Response
	// OnError produces the response for a request that failed to parse.
	OnError(err error) *http.Response
}
