package proto

import "strings"

type Protocol uint8

const (
	Unknown Protocol = iota
	HTTP11
)

const httpScheme = "HTTP"

// Parse validates a protocol token from a request line. The token must name
// the HTTP scheme and version 1.1 literally; everything else, including
// HTTP/1.0 and HTTP/2, maps to Unknown.
func Parse(token string) Protocol {
	scheme, version, found := strings.Cut(token, "/")
	if !found || scheme != httpScheme || version != "1.1" {
		return Unknown
	}

	return HTTP11
}

func (p Protocol) String() string {
	if p == HTTP11 {
		return "HTTP/1.1"
	}

	return ""
}
