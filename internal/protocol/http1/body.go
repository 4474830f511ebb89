package http1

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wireline-web/wireline/http"
	"github.com/wireline-web/wireline/http/status"
	"github.com/wireline-web/wireline/kv"
)

type framingKind uint8

const (
	// framingNone means no framing headers are present: the body is empty and
	// whatever bytes may follow on the wire are left unconsumed.
	framingNone framingKind = iota
	framingFixed
	framingChunked
)

type framing struct {
	kind          framingKind
	contentLength int
}

// resolveFraming decides how the message body is delimited, using the parsed
// headers and the raw-line evidence. Any combination leaving the body length
// ambiguous is rejected outright instead of preferring one of the candidate
// interpretations: a proxy in front of us may prefer the other one, and the
// disagreement is what makes request smuggling possible.
func resolveFraming(headers *kv.Storage, ev framingEvidence) (framing, error) {
	if ev.transferEncodings > 1 {
		return framing{}, status.ErrDuplicateTransferEncoding
	}

	if ev.contentLengths > 1 {
		return framing{}, status.ErrDuplicateContentLength
	}

	te, hasTE := headers.Get("transfer-encoding")
	chunked := hasTE && strings.Contains(strings.ToLower(te), "chunked")

	value, hasCL := headers.Get("content-length")

	if chunked && hasCL {
		return framing{}, status.ErrAmbiguousFraming
	}

	switch {
	case chunked:
		return framing{kind: framingChunked}, nil
	case hasCL:
		length, err := strconv.ParseUint(value, 10, 31)
		if err != nil {
			return framing{}, fmt.Errorf("%w: %s", status.ErrBadContentLength, value)
		}

		return framing{kind: framingFixed, contentLength: int(length)}, nil
	default:
		return framing{kind: framingNone}, nil
	}
}

// fixedBody cuts exactly length bytes off the buffered body section.
func fixedBody(section []byte, length int) (http.Body, error) {
	if length == 0 {
		return http.EmptyBody(), nil
	}

	if len(section) < length {
		return http.EmptyBody(), status.UnexpectedEOF{Expected: length, Actual: len(section)}
	}

	return http.BodyOf(section[:length]), nil
}
