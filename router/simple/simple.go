package simple

import (
	"github.com/wireline-web/wireline/http"
	"github.com/wireline-web/wireline/router"
)

type (
	Handler      func(*http.Request) *http.Response
	ErrorHandler func(error) *http.Response
)

type simple struct {
	handler    Handler
	errHandler ErrorHandler
}

// NewRouter wraps a pair of plain functions into a Router. Passing a nil
// error handler installs the default one, which renders the parse error as a
// client-error response.
func NewRouter(handler Handler, errHandler ErrorHandler) router.Router {
	if errHandler == nil {
		errHandler = DefaultErrorHandler
	}

	return simple{
		handler:    handler,
		errHandler: errHandler,
	}
}

func (s simple) OnRequest(request *http.Request) *http.Response {
	return s.handler(request)
}

func (s simple) OnError(err error) *http.Response {
	return s.errHandler(err)
}

// DefaultErrorHandler responds with the code carried by the error, which for
// parse failures is 400 Bad Request.
func DefaultErrorHandler(err error) *http.Response {
	return http.Error(err)
}
