package http

import "github.com/indigo-web/utils/uf"

// Body is the message payload, which is either empty or carries content. The
// two states differ only in how the value was produced: a zero-length content
// body reports the same length and emptiness as the empty one.
type Body struct {
	content    []byte
	hasContent bool
}

// EmptyBody returns a body in the empty state.
func EmptyBody() Body {
	return Body{}
}

// BodyOf returns a body carrying the passed content WITHOUT COPYING it.
func BodyOf(content []byte) Body {
	return Body{content: content, hasContent: true}
}

// Bytes returns the raw payload. It's nil for the empty body.
func (b Body) Bytes() []byte {
	return b.content
}

// String returns the payload interpreted as a string.
func (b Body) String() string {
	return uf.B2S(b.content)
}

func (b Body) Len() int {
	return len(b.content)
}

func (b Body) Empty() bool {
	return len(b.content) == 0
}
