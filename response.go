package junction

import "net/http"

// A Response is the in-memory value object a middleware produces.
//
// A partial Response - say, only a Status - may be registered directly
// as a static handler; the route package defaults whatever fields the
// author left unset before it is ever returned to a caller.
type Response struct {
	// Status is the HTTP status code.
	Status int

	// Header holds the response headers.
	Header http.Header

	// Body holds the response payload, if any.
	Body []byte

	// Fields carries arbitrary extension data set by middleware.
	Fields map[string]any
}

// Location retrieves the Location header, or "" when unset.
func (res *Response) Location() string {
	if res.Header == nil {
		return ""
	}

	return res.Header.Get("Location")
}
