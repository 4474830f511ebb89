package http1

import (
	"fmt"
	"strings"

	"github.com/wireline-web/wireline/http/method"
	"github.com/wireline-web/wireline/http/proto"
	"github.com/wireline-web/wireline/http/status"
)

// ParseRequestLine tokenizes a request line (without the line terminator)
// into its method, target and protocol. The line must consist of exactly
// three whitespace-separated tokens; the target is kept verbatim and isn't
// validated as a URI.
func ParseRequestLine(line string) (m method.Method, target string, p proto.Protocol, err error) {
	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return m, "", p, fmt.Errorf("%w: got %d tokens", status.ErrBadRequestLine, len(tokens))
	}

	m = method.Parse(tokens[0])
	if m == method.Unknown {
		return m, "", p, fmt.Errorf("%w: %s", status.ErrMethodNotRecognized, tokens[0])
	}

	p = proto.Parse(tokens[2])
	if p == proto.Unknown {
		return m, "", p, fmt.Errorf("%w: %s", status.ErrUnsupportedProtocol, tokens[2])
	}

	return m, tokens[1], p, nil
}
