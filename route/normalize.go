package route

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/junction-http/junction"
)

// NormalizeRequest canonicalizes a partial [junction.Request] supplied
// by a caller: the method is upper-cased (defaulting to GET), the URL is
// parsed and reserialized, a missing path becomes "/", and nil maps are
// initialized. The input value is not mutated.
//
// Every Request handed to a middleware has passed through here, so
// middlewares may assume a parseable URL and a non-nil Header.
func NormalizeRequest(partial junction.Request) (*junction.Request, error) {
	if partial.URL == "" {
		return nil, fmt.Errorf("%w: request URL", junction.ErrMissingData)
	}

	u, err := partial.ParseURL()
	if err != nil {
		return nil, fmt.Errorf("%w: request URL: %s", junction.ErrNotValid, err)
	}

	if u.Path == "" {
		u.Path = "/"
	}

	method := strings.ToUpper(strings.TrimSpace(partial.Method))
	if method == "" {
		method = http.MethodGet
	}

	r := &junction.Request{
		Method: method,
		URL:    u.String(),
		Header: partial.Header.Clone(),
		Body:   partial.Body,
		Fields: partial.Fields,
	}

	if r.Header == nil {
		r.Header = make(http.Header)
	}

	if r.Fields == nil {
		r.Fields = make(map[string]any)
	}

	return r, nil
}

// NormalizeContext constructs the fresh [junction.Context] for one
// dispatch call, tagged with the [junction.Execution] of the entry point
// used and carrying a unique dispatch ID.
//
// goCtx may be nil on the synchronous path; [context.Background] is
// substituted.
func NormalizeContext(exec junction.Execution, goCtx context.Context) *junction.Context {
	if goCtx == nil {
		goCtx = context.Background()
	}

	c := &junction.Context{
		Execution: exec,
		ID:        uuid.NewString(),
		Values:    make(map[junction.Key]any),
		Ctx:       goCtx,
	}
	c.Set(junction.DispatchIDKey, c.ID)

	return c
}
