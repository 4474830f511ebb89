package method

type Method uint8

const (
	Unknown Method = iota
	GET
	PUT
	POST
	DELETE
)

// List contains all the supported HTTP methods, sorted by their integer value.
// Unknown is not included.
var List = []Method{GET, PUT, POST, DELETE}

// Parse returns the method the string names, or Unknown. The match is exact
// and case-sensitive: lowercased or extension methods aren't recognized.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		} else if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		}
	case 6:
		if str == "DELETE" {
			return DELETE
		}
	}

	return Unknown
}

func (m Method) String() string {
	lut := [...]string{GET: "GET", PUT: "PUT", POST: "POST", DELETE: "DELETE"}
	if int(m) >= len(lut) {
		return ""
	}

	return lut[m]
}
