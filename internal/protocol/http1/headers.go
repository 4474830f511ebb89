package http1

import (
	"strings"

	"github.com/indigo-web/utils/strcomp"
	"github.com/wireline-web/wireline/http/status"
	"github.com/wireline-web/wireline/kv"
)

// tokenChars marks the characters permitted in header field names, as per
// RFC 9110 tokens: ASCII alphanumerics plus a fixed punctuation set.
var tokenChars = [256]bool{}

func init() {
	const punct = "!#$%&'*+-.^_`|~"

	for c := '0'; c <= '9'; c++ {
		tokenChars[c] = true
	}

	for c := 'a'; c <= 'z'; c++ {
		tokenChars[c] = true
		tokenChars[c-'a'+'A'] = true
	}

	for _, c := range punct {
		tokenChars[c] = true
	}
}

// framingEvidence counts the raw header lines relevant to body framing. The
// counting must happen before insertion into the storage: folding duplicates
// into one comma-joined value would otherwise mask repeated framing headers,
// which is exactly what request smuggling exploits.
type framingEvidence struct {
	contentLengths    int
	transferEncodings int
}

// parseHeaderLine splits one non-empty header line into a validated pair.
func parseHeaderLine(line string) (key, value string, err error) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return "", "", status.ErrHeaderMissingColon
	}

	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	switch {
	case len(key) == 0:
		return "", "", status.ErrEmptyHeaderKey
	case len(value) == 0:
		return "", "", status.ErrEmptyHeaderValue
	case !isValidKey(key):
		return "", "", status.ErrInvalidHeaderKey
	case !isValidValue(value):
		return "", "", status.ErrInvalidHeaderValue
	}

	return key, value, nil
}

// parseHeaders consumes header lines until the first empty one, inserting the
// pairs into the storage and gathering the framing evidence along the way.
// The terminating empty line itself isn't consumed: locating the header/body
// boundary is the caller's job.
func parseHeaders(lines []string, headers *kv.Storage) (ev framingEvidence, err error) {
	for _, line := range lines {
		if len(line) == 0 {
			break
		}

		key, value, err := parseHeaderLine(line)
		if err != nil {
			return ev, err
		}

		switch {
		case strcomp.EqualFold(key, "content-length"):
			ev.contentLengths++
		case strcomp.EqualFold(key, "transfer-encoding"):
			ev.transferEncodings++
		}

		headers.Add(key, value)
	}

	return ev, nil
}

func isValidKey(key string) bool {
	for i := 0; i < len(key); i++ {
		if !tokenChars[key[i]] {
			return false
		}
	}

	return true
}

// isValidValue permits printable ASCII, space, tab and any non-ASCII byte.
// The latter keeps naively-encoded internationalized values readable; control
// characters are rejected unconditionally.
func isValidValue(value string) bool {
	for i := 0; i < len(value); i++ {
		switch c := value[i]; {
		case c == ' ' || c == '\t':
		case c > 0x20 && c < 0x7F:
		case c >= 0x80:
		default:
			return false
		}
	}

	return true
}
