package status

import (
	"errors"
	"fmt"
)

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// ErrorOf extracts the status code carried by the error, falling back to
// 400 Bad Request for everything unrecognized. Parse errors never escalate
// past the client-error class.
func ErrorOf(err error) Code {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return BadRequest
}

var (
	// request line
	ErrBadRequestLine      = NewError(BadRequest, "invalid request line: expected 'METHOD TARGET HTTP/VERSION'")
	ErrMethodNotRecognized = NewError(BadRequest, "invalid request method")
	ErrUnsupportedProtocol = NewError(HTTPVersionNotSupported, "invalid or unsupported protocol version")

	// headers
	ErrHeaderMissingColon        = NewError(BadRequest, "invalid header: missing colon separator")
	ErrEmptyHeaderKey            = NewError(BadRequest, "invalid header: empty name")
	ErrEmptyHeaderValue          = NewError(BadRequest, "invalid header: empty value")
	ErrInvalidHeaderKey          = NewError(BadRequest, "invalid header name: contains invalid characters")
	ErrInvalidHeaderValue        = NewError(BadRequest, "invalid header value: contains invalid characters")
	ErrAmbiguousFraming          = NewError(BadRequest, "ambiguous message framing: conflicting Content-Length and Transfer-Encoding")
	ErrDuplicateContentLength    = NewError(BadRequest, "duplicate Content-Length header")
	ErrDuplicateTransferEncoding = NewError(BadRequest, "duplicate Transfer-Encoding header")

	// body
	ErrBadContentLength = NewError(BadRequest, "invalid Content-Length value")
	ErrBadChunk         = NewError(BadRequest, "malformed chunk-encoded data")

	// encoding
	ErrBadEncoding = NewError(BadRequest, "invalid UTF-8 in request")
	ErrURLDecoding = NewError(BadRequest, "invalid urlencoded sequence")

	ErrBadRequest          = NewError(BadRequest, "bad request")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")
	ErrNotFound            = NewError(NotFound, "not found")
	ErrMethodNotAllowed    = NewError(MethodNotAllowed, "method not allowed")
	ErrShutdown            = NewError(ServiceUnavailable, "graceful shutdown")
)

// UnexpectedEOF signals that the message body carried fewer bytes than its
// Content-Length declared.
type UnexpectedEOF struct {
	Expected, Actual int
}

func (u UnexpectedEOF) Error() string {
	return fmt.Sprintf("unexpected end of body: expected %d bytes, got %d", u.Expected, u.Actual)
}
