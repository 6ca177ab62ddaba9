package route

import (
	"fmt"
	"net/http"
	"strings"

	"dario.cat/mergo"
	"github.com/gorilla/mux"
	"github.com/junction-http/junction"
)

// WildcardMethod matches any HTTP method when used as a method pattern.
const WildcardMethod = "*"

// New synthesizes the route-bound [junction.Middleware] for the given
// method pattern, path pattern, and handler.
//
// handler is either a [junction.Middleware] (invoked when the patterns
// match) or a [junction.Response] value or pointer (returned when the
// patterns match, with unset fields defaulted). Any other handler is an
// argument error, as is an empty method or pattern. Errors surface here,
// at registration time - never through a router's event bus.
func New(method, pattern string, handler any) (junction.Middleware, error) {
	if method == "" || pattern == "" {
		return nil, fmt.Errorf("%w: method and path pattern", junction.ErrMissingData)
	}

	if handler == nil {
		return nil, fmt.Errorf("%w: handler", junction.ErrMissingData)
	}

	var mw junction.Middleware
	switch h := handler.(type) {
	case junction.Middleware:
		mw = h

	case func(*junction.Request, *junction.Context) (*junction.Response, error):
		mw = h

	case junction.Response:
		mw = respond(h)

	case *junction.Response:
		mw = respond(*h)

	default:
		return nil, fmt.Errorf(
			"%w: handler must be a junction.Middleware or junction.Response, got %T",
			junction.ErrNotValid,
			handler,
		)
	}

	matcher, err := newMatcher(method, pattern)
	if err != nil {
		return nil, err
	}

	return func(r *junction.Request, c *junction.Context) (*junction.Response, error) {
		params, ok := matcher(r)
		if !ok {
			return nil, nil
		}

		if len(params) > 0 {
			r.Params = params
		}

		return mw(r, c)
	}, nil
}

// respond wraps the partial static res as a Middleware, defaulting the
// fields the author left unset. Each invocation hands back a fresh copy
// so callers cannot mutate the registered value.
func respond(res junction.Response) junction.Middleware {
	defaults := junction.Response{
		Status: http.StatusOK,
		Header: make(http.Header),
		Fields: make(map[string]any),
	}
	if err := mergo.Merge(&res, defaults); err != nil {
		// Merging two concrete Response values cannot fail; guard anyway.
		res.Status = http.StatusOK
	}

	return func(_ *junction.Request, _ *junction.Context) (*junction.Response, error) {
		out := res
		out.Header = res.Header.Clone()
		out.Fields = make(map[string]any, len(res.Fields))
		for k, v := range res.Fields {
			out.Fields[k] = v
		}

		return &out, nil
	}
}

// newMatcher compiles the method and path patterns into a predicate over
// normalized Requests, reporting extracted path parameters on a match.
func newMatcher(method, pattern string) (func(*junction.Request) (map[string]string, bool), error) {
	rt := mux.NewRouter().NewRoute().Path(pattern)
	if method != WildcardMethod {
		rt = rt.Methods(strings.ToUpper(method))
	}

	if err := rt.GetError(); err != nil {
		return nil, fmt.Errorf("%w: path pattern %q: %s", junction.ErrNotValid, pattern, err)
	}

	return func(r *junction.Request) (map[string]string, bool) {
		u, err := r.ParseURL()
		if err != nil {
			return nil, false
		}

		var m mux.RouteMatch
		if !rt.Match(&http.Request{Method: r.Method, URL: u}, &m) {
			return nil, false
		}

		return m.Vars, true
	}, nil
}
