package junction

import (
	"net/http"
	"net/url"
)

// A Request is the in-memory value object driven through a middleware
// chain. Callers may construct a partial Request; normalization (see the
// route package) canonicalizes it before the first middleware sees it.
//
// After normalization a Request is treated as immutable for the
// remainder of one dispatch pass. Redirect following constructs a fresh
// Request for each hop rather than mutating the current one.
type Request struct {
	// Method is the HTTP method. Matching is case-insensitive;
	// normalization upper-cases whatever the caller supplied.
	Method string

	// URL is the request target, either absolute or a bare path.
	URL string

	// Header holds the request headers.
	Header http.Header

	// Body holds the request payload, if any.
	Body []byte

	// Fields carries arbitrary extension data supplied by the caller.
	Fields map[string]any

	// Params holds named path parameters extracted by the route that
	// matched this Request. Nil until a parameterized route matches.
	Params map[string]string
}

// Clone returns a deep-enough copy of the Request for a redirect hop:
// headers and extension fields are copied, the body is shared.
func (r *Request) Clone() *Request {
	dup := &Request{
		Method: r.Method,
		URL:    r.URL,
		Header: r.Header.Clone(),
		Body:   r.Body,
	}

	if r.Fields != nil {
		dup.Fields = make(map[string]any, len(r.Fields))
		for k, v := range r.Fields {
			dup.Fields[k] = v
		}
	}

	return dup
}

// Param retrieves the named path parameter, or "" if the Request was not
// matched by a parameterized route.
func (r *Request) Param(name string) string { return r.Params[name] }

// ParseURL parses the Request's target. Normalization guarantees this
// succeeds for any Request handed to a middleware.
func (r *Request) ParseURL() (*url.URL, error) {
	u, err := url.Parse(r.URL)
	if err != nil {
		return nil, err
	}

	return u, nil
}
