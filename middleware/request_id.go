package middleware

import (
	"github.com/google/uuid"
	"github.com/junction-http/junction"
)

// RequestID stashes a uuid in the dispatch context under key.
//
// If key is zero, then [Noop] returns and this middleware does nothing.
func RequestID(key junction.Key) junction.Middleware {
	if key == "" {
		return Noop
	}

	return func(_ *junction.Request, c *junction.Context) (*junction.Response, error) {
		c.Set(key, uuid.NewString())
		return nil, nil
	}
}
