package http

import (
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
	"github.com/wireline-web/wireline/http/status"
	"github.com/wireline-web/wireline/kv"
)

const preallocRespHeaders = 4

// ResponseFields is the way the serializer sees a response. Handlers should
// use the builder methods of Response instead.
type ResponseFields struct {
	Code status.Code
	// Status is a custom reason phrase. When empty, the standard one for the
	// Code is used.
	Status  status.Status
	Headers *kv.Storage
	Body    []byte
}

// Response is a builder over the response fields. A fresh instance carries
// 200 OK and no body.
type Response struct {
	fields ResponseFields
}

func NewResponse() *Response {
	return &Response{
		fields: ResponseFields{
			Code:    status.OK,
			Headers: kv.NewPrealloc(preallocRespHeaders),
		},
	}
}

// Code sets the response code. The reason phrase is derived from it, unless
// Status is called explicitly.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Status sets a custom reason phrase. Clients generally ignore it.
func (r *Response) Status(status status.Status) *Response {
	r.fields.Status = status
	return r
}

// Header adds a header to the response. Adding an already present key folds
// the values together, comma-separated.
func (r *Response) Header(key, value string) *Response {
	r.fields.Headers.Add(key, value)
	return r
}

// String sets the response body to the passed string.
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response body to the passed slice WITHOUT COPYING, so
// modifying it later affects the response.
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// JSON sets the response body to the marshalled model and the content type to
// application/json. A model that can't be marshalled degrades the response to
// 500 Internal Server Error.
func (r *Response) JSON(model any) *Response {
	body, err := json.Marshal(model)
	if err != nil {
		return Error(status.ErrInternalServerError)
	}

	return r.
		Header("Content-Type", "application/json").
		Bytes(body)
}

// Error returns a response with the code carried by the error and its message
// as a plain-text body. Errors with no code behind them map to 400.
func Error(err error) *Response {
	code := status.ErrorOf(err)

	return NewResponse().
		Code(code).
		String(err.Error())
}

// Expose exposes the underlying response fields.
func (r *Response) Expose() *ResponseFields {
	return &r.fields
}
