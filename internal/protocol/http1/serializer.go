package http1

import (
	"strconv"

	"github.com/wireline-web/wireline/http"
	"github.com/wireline-web/wireline/http/status"
)

// Serialize renders the response into its wire form, appending to buff. The
// Connection: close header is always attached, as the server speaks strictly
// one request per connection; Content-Length accompanies any non-empty body.
func Serialize(fields *http.ResponseFields, buff []byte) []byte {
	buff = append(buff, "HTTP/1.1 "...)
	buff = strconv.AppendUint(buff, uint64(fields.Code), 10)
	buff = append(buff, ' ')
	buff = append(buff, reason(fields)...)
	buff = crlf(buff)

	buff = append(buff, "Connection: close\r\n"...)

	if len(fields.Body) > 0 {
		buff = append(buff, "Content-Length: "...)
		buff = strconv.AppendInt(buff, int64(len(fields.Body)), 10)
		buff = crlf(buff)
	}

	for key, value := range fields.Headers.Iter() {
		buff = append(buff, key...)
		buff = append(buff, ": "...)
		buff = append(buff, value...)
		buff = crlf(buff)
	}

	buff = crlf(buff)
	buff = append(buff, fields.Body...)

	return buff
}

func reason(fields *http.ResponseFields) status.Status {
	if len(fields.Status) > 0 {
		return fields.Status
	}

	if text := status.Text(fields.Code); len(text) > 0 {
		return text
	}

	return "Unknown Status Code"
}

func crlf(buff []byte) []byte {
	return append(buff, '\r', '\n')
}
