package http1

import (
	"io"
	"strings"

	"github.com/indigo-web/utils/uf"
)

// wire reads lines off an unbuffered stream one byte at a time. Slower than a
// buffered reader, but it upholds the framing invariant the whole engine is
// built around: not a single byte past the current message is ever consumed,
// so the stream stays intact for whoever owns the connection next.
type wire struct {
	src io.Reader
	byt [1]byte
}

func newWire(src io.Reader) *wire {
	return &wire{src: src}
}

// readLine reads one line, tolerating both CRLF and bare-LF terminators,
// neither of which is included in the result. A stream ending mid-line yields
// the partial line; the EOF surfaces on the next call.
func (w *wire) readLine() (string, error) {
	var line []byte

	for {
		b, err := w.readByte()
		if err != nil {
			if len(line) == 0 {
				return "", err
			}

			break
		}

		if b == '\n' {
			break
		}

		line = append(line, b)
	}

	return strings.TrimSuffix(uf.B2S(line), "\r"), nil
}

// readFull reads exactly len(buf) bytes, reporting how many arrived.
func (w *wire) readFull(buf []byte) (int, error) {
	return io.ReadFull(w.src, buf)
}

func (w *wire) readByte() (byte, error) {
	if _, err := io.ReadFull(w.src, w.byt[:]); err != nil {
		return 0, err
	}

	return w.byt[0], nil
}
