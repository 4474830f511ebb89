package http1

import (
	"strings"

	"github.com/wireline-web/wireline/http"
	"github.com/wireline-web/wireline/http/status"
	"github.com/wireline-web/wireline/internal/hexconv"
)

// maxChunkLengthDigits sets the implicit limit of a single chunk length to
// 4GiB, which is supposedly enough.
const maxChunkLengthDigits = 8

// readChunked decodes a chunked transfer-encoded body off the wire: a
// sequence of hex-length-prefixed chunks terminated by a zero-length one.
// Chunk extensions are ignored, trailer field lines after the zero chunk are
// consumed and discarded. The wire is left positioned right past the final
// blank line.
func readChunked(w *wire) (http.Body, error) {
	var body []byte

	for {
		line, err := w.readLine()
		if err != nil {
			return http.EmptyBody(), status.ErrBadChunk
		}

		length, err := parseChunkLength(line)
		if err != nil {
			return http.EmptyBody(), err
		}

		if length == 0 {
			if err = discardTrailer(w); err != nil {
				return http.EmptyBody(), err
			}

			return http.BodyOf(body), nil
		}

		offset := len(body)
		body = append(body, make([]byte, length)...)
		if _, err = w.readFull(body[offset:]); err != nil {
			return http.EmptyBody(), status.ErrBadChunk
		}

		// each chunk's data must be followed by its own line terminator
		terminator, err := w.readLine()
		if err != nil || len(terminator) != 0 {
			return http.EmptyBody(), status.ErrBadChunk
		}
	}
}

// parseChunkLength parses the hexadecimal chunk size, cutting off the
// optional semicolon-delimited extensions.
func parseChunkLength(line string) (int, error) {
	token, _, _ := strings.Cut(line, ";")
	token = strings.TrimSpace(token)
	if len(token) == 0 || len(token) > maxChunkLengthDigits {
		return 0, status.ErrBadChunk
	}

	length := 0

	for i := 0; i < len(token); i++ {
		halfbyte := hexconv.Halfbyte[token[i]]
		if halfbyte > 0x0f {
			return 0, status.ErrBadChunk
		}

		length = (length << 4) | int(halfbyte)
	}

	return length, nil
}

func discardTrailer(w *wire) error {
	for {
		line, err := w.readLine()
		if err != nil {
			return status.ErrBadChunk
		}

		if len(line) == 0 {
			return nil
		}
	}
}
