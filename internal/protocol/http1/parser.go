package http1

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/utils/uf"
	"github.com/wireline-web/wireline/config"
	"github.com/wireline-web/wireline/http"
	"github.com/wireline-web/wireline/http/query"
	"github.com/wireline-web/wireline/http/status"
	"github.com/wireline-web/wireline/kv"
)

// Parse assembles a request out of a fully buffered message. The first
// occurrence of an empty line splits the buffer into the header section and
// the body section; a buffer without one is all header section. Failing any
// stage aborts the assembly: an error never comes with a partial request.
func Parse(cfg *config.Config, data []byte) (*http.Request, error) {
	headerSection, bodySection := splitSections(data)

	if !utf8.Valid(headerSection) {
		return nil, status.ErrBadEncoding
	}

	lines := strings.Split(uf.B2S(headerSection), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return assemble(cfg, lines, func(f framing) (http.Body, error) {
		switch f.kind {
		case framingChunked:
			return readChunked(newWire(bytes.NewReader(bodySection)))
		case framingFixed:
			return fixedBody(bodySection, f.contentLength)
		default:
			return http.EmptyBody(), nil
		}
	})
}

// ParseFrom assembles a request incrementally off the reader: header lines
// are read one by one until the blank line (both CRLF and bare-LF terminators
// are tolerated), after which the body is read according to the resolved
// framing. Nothing past the body boundary is consumed, so the stream stays
// clean for whoever owns the connection next.
func ParseFrom(cfg *config.Config, r io.Reader) (*http.Request, error) {
	w := newWire(r)

	var lines []string

	for {
		line, err := w.readLine()
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		} else if err != nil {
			return nil, err
		}

		if len(line) == 0 {
			break
		}

		if !utf8.ValidString(line) {
			return nil, status.ErrBadEncoding
		}

		lines = append(lines, line)
	}

	return assemble(cfg, lines, func(f framing) (http.Body, error) {
		switch f.kind {
		case framingChunked:
			return readChunked(w)
		case framingFixed:
			return readFixed(w, f.contentLength)
		default:
			return http.EmptyBody(), nil
		}
	})
}

// assemble runs the parsing stages common to both entry points, delegating
// the body retrieval to the caller.
func assemble(cfg *config.Config, lines []string, body func(framing) (http.Body, error)) (*http.Request, error) {
	if len(lines) == 0 {
		lines = []string{""}
	}

	m, target, protocol, err := ParseRequestLine(lines[0])
	if err != nil {
		return nil, err
	}

	headers := kv.NewPrealloc(cfg.Headers.Prealloc)
	evidence, err := parseHeaders(lines[1:], headers)
	if err != nil {
		return nil, err
	}

	f, err := resolveFraming(headers, evidence)
	if err != nil {
		return nil, err
	}

	b, err := body(f)
	if err != nil {
		return nil, err
	}

	q, err := query.FromURL(target)
	if err != nil {
		return nil, err
	}

	return &http.Request{
		Method:   m,
		Target:   target,
		Protocol: protocol,
		Headers:  headers,
		Query:    q,
		Body:     b,
	}, nil
}

// readFixed reads exactly length bytes off the wire, not one byte more.
func readFixed(w *wire, length int) (http.Body, error) {
	if length == 0 {
		return http.EmptyBody(), nil
	}

	buf := make([]byte, length)
	read, err := w.readFull(buf)
	if err != nil {
		return http.EmptyBody(), status.UnexpectedEOF{Expected: length, Actual: read}
	}

	return http.BodyOf(buf), nil
}

func splitSections(data []byte) (headerSection, bodySection []byte) {
	if boundary := bytes.Index(data, []byte("\r\n\r\n")); boundary != -1 {
		return data[:boundary], data[boundary+4:]
	}

	return data, nil
}
