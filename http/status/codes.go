package status

type (
	Code   uint16
	Status string
)

// HTTP status codes as registered with IANA.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	OK        Code = 200
	Created   Code = 201
	Accepted  Code = 202
	NoContent Code = 204

	MovedPermanently  Code = 301
	Found             Code = 302
	SeeOther          Code = 303
	NotModified       Code = 304
	TemporaryRedirect Code = 307
	PermanentRedirect Code = 308

	BadRequest            Code = 400
	Unauthorized          Code = 401
	Forbidden             Code = 403
	NotFound              Code = 404
	MethodNotAllowed      Code = 405
	NotAcceptable         Code = 406
	Conflict              Code = 409
	Gone                  Code = 410
	PreconditionFailed    Code = 412
	ContentTooLarge       Code = 413
	URITooLong            Code = 414
	UnsupportedMediaType  Code = 415
	RangeNotSatisfiable   Code = 416
	UpgradeRequired       Code = 426

	InternalServerError     Code = 500
	NotImplemented          Code = 501
	BadGateway              Code = 502
	ServiceUnavailable      Code = 503
	GatewayTimeout          Code = 504
	HTTPVersionNotSupported Code = 505
)

// Text returns a reason phrase for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case Created:
		return "Created"
	case Accepted:
		return "Accepted"
	case NoContent:
		return "No Content"
	case MovedPermanently:
		return "Moved Permanently"
	case Found:
		return "Found"
	case SeeOther:
		return "See Other"
	case NotModified:
		return "Not Modified"
	case TemporaryRedirect:
		return "Temporary Redirect"
	case PermanentRedirect:
		return "Permanent Redirect"
	case BadRequest:
		return "Bad Request"
	case Unauthorized:
		return "Unauthorized"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	case NotAcceptable:
		return "Not Acceptable"
	case Conflict:
		return "Conflict"
	case Gone:
		return "Gone"
	case PreconditionFailed:
		return "Precondition Failed"
	case ContentTooLarge:
		return "Content Too Large"
	case URITooLong:
		return "URI Too Long"
	case UnsupportedMediaType:
		return "Unsupported Media Type"
	case RangeNotSatisfiable:
		return "Range Not Satisfiable"
	case UpgradeRequired:
		return "Upgrade Required"
	case InternalServerError:
		return "Internal Server Error"
	case NotImplemented:
		return "Not Implemented"
	case BadGateway:
		return "Bad Gateway"
	case ServiceUnavailable:
		return "Service Unavailable"
	case GatewayTimeout:
		return "Gateway Timeout"
	case HTTPVersionNotSupported:
		return "HTTP Version Not Supported"
	}

	return ""
}
