package query

import (
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/utils/uf"
	"github.com/wireline-web/wireline/http/status"
	"github.com/wireline-web/wireline/internal/hexconv"
)

type Pair struct {
	Key, Value string
}

// Query holds decoded URI query parameters. A key may repeat, in which case
// all its values are kept in the order they appeared on the wire. Lookups are
// case-sensitive, as the keys are already decoded user data.
type Query struct {
	pairs []Pair
}

func New() *Query {
	return new(Query)
}

// Parse decodes a raw query string (the part of the request target following
// the question mark). Pairs are separated by ampersands; a pair without an
// equals sign is treated as a key with an empty value. Both keys and values
// are urldecoded.
func Parse(raw string) (*Query, error) {
	q := New()

	if len(raw) == 0 {
		return q, nil
	}

	for _, pair := range strings.Split(raw, "&") {
		if len(pair) == 0 {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")

		key, err := DecodeURL(key)
		if err != nil {
			return nil, err
		}

		value, err = DecodeURL(value)
		if err != nil {
			return nil, err
		}

		q.pairs = append(q.pairs, Pair{key, value})
	}

	return q, nil
}

// FromURL decodes the query component of a request target, which is everything
// past the first question mark. A target without one produces an empty Query.
func FromURL(target string) (*Query, error) {
	if _, raw, found := strings.Cut(target, "?"); found {
		return Parse(raw)
	}

	return New(), nil
}

// Get returns the first value of the key.
func (q *Query) Get(key string) (value string, found bool) {
	for _, pair := range q.pairs {
		if pair.Key == key {
			return pair.Value, true
		}
	}

	return "", false
}

// ValueOr returns either the first value of the key or the passed fallback.
func (q *Query) ValueOr(key, or string) string {
	if value, found := q.Get(key); found {
		return value
	}

	return or
}

// GetAll returns all the values of the key in their original order, or nil if
// the key isn't present.
func (q *Query) GetAll(key string) (values []string) {
	for _, pair := range q.pairs {
		if pair.Key == key {
			values = append(values, pair.Value)
		}
	}

	return values
}

func (q *Query) Has(key string) bool {
	_, found := q.Get(key)
	return found
}

// Len returns the number of stored pairs, counting repetitions.
func (q *Query) Len() int {
	return len(q.pairs)
}

func (q *Query) Empty() bool {
	return q.Len() == 0
}

// Expose exposes the underlying pairs slice.
func (q *Query) Expose() []Pair {
	return q.pairs
}

// DecodeURL resolves percent-escapes and pluses in the string. Truncated or
// non-hexadecimal escapes, as well as escapes assembling into invalid UTF-8,
// are rejected.
func DecodeURL(s string) (string, error) {
	if strings.IndexByte(s, '%') == -1 && strings.IndexByte(s, '+') == -1 {
		return s, nil
	}

	decoded := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '%':
			if i+2 >= len(s) {
				return "", status.ErrURLDecoding
			}

			a, b := hexconv.Halfbyte[s[i+1]], hexconv.Halfbyte[s[i+2]]
			if a|b > 0x0f {
				return "", status.ErrURLDecoding
			}

			decoded = append(decoded, (a<<4)|b)
			i += 2
		case '+':
			decoded = append(decoded, ' ')
		default:
			decoded = append(decoded, c)
		}
	}

	if !utf8.Valid(decoded) {
		return "", status.ErrURLDecoding
	}

	return uf.B2S(decoded), nil
}

const unreserved = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.~"

const upperhex = "0123456789ABCDEF"

// EncodeURL escapes the string for safe use inside a query component:
// unreserved characters pass through, spaces become pluses, everything else
// is percent-escaped. It holds that DecodeURL(EncodeURL(s)) == s for any s,
// although EncodeURL is not the only encoding decoding back to s.
func EncodeURL(s string) string {
	encoded := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case strings.IndexByte(unreserved, c) != -1:
			encoded = append(encoded, c)
		case c == ' ':
			encoded = append(encoded, '+')
		default:
			encoded = append(encoded, '%', upperhex[c>>4], upperhex[c&0x0f])
		}
	}

	return uf.B2S(encoded)
}
