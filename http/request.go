package http

import (
	"net"

	"github.com/wireline-web/wireline/http/method"
	"github.com/wireline-web/wireline/http/proto"
	"github.com/wireline-web/wireline/http/query"
	"github.com/wireline-web/wireline/kv"
)

type Headers = *kv.Storage

// Request represents a single parsed HTTP request. A value of it is handed to
// the handler only fully assembled: there is no partially valid Request.
type Request struct {
	// Method is an enum of the request method. Only GET, PUT, POST and DELETE
	// are recognized, anything else fails the parsing.
	Method method.Method
	// Target is the raw request target, exactly as it appeared on the wire.
	// It isn't validated as a URI, and its query component isn't stripped.
	Target string
	// Protocol is always proto.HTTP11, as no other version passes the parser.
	Protocol proto.Protocol
	// Headers hold the header fields. Names are matched case-insensitively,
	// values of repeated names are folded into one comma-joined string.
	Headers Headers
	// Query holds the decoded query parameters from the Target.
	Query *query.Query
	// Body is the resolved message payload. Its framing (fixed-length or
	// chunked) is already dealt with at this point.
	Body Body
	// Remote holds the address of the peer the request arrived from. It is
	// nil for requests parsed outside a connection.
	Remote net.Addr
}

// Path returns the target without its query component.
func (r *Request) Path() string {
	for i := 0; i < len(r.Target); i++ {
		if r.Target[i] == '?' {
			return r.Target[:i]
		}
	}

	return r.Target
}

// Header returns the value of the named header, or an empty string.
func (r *Request) Header(key string) string {
	return r.Headers.Value(key)
}
