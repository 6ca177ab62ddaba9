package route

import (
	"context"
	"net/http"

	"github.com/junction-http/junction"
)

// A ChainResult is delivered on the channel [ExecuteAsync] returns.
type ChainResult struct {
	Response *junction.Response
	Err      error
}

// ExecuteSync evaluates the chain against r in registration order on the
// caller's goroutine. The first middleware to produce a response or an
// error ends evaluation; if every middleware passes, the not-found
// contract response returns.
func ExecuteSync(r *junction.Request, c *junction.Context, mws []junction.Middleware) (*junction.Response, error) {
	for _, mw := range mws {
		res, err := mw(r, c)
		if err != nil {
			return nil, err
		}

		if res != nil {
			return res, nil
		}
	}

	return NotFound(), nil
}

// ExecuteAsync evaluates the chain off the caller's goroutine, with the
// same semantics as [ExecuteSync], delivering exactly one [ChainResult]
// on the returned channel.
//
// goCtx is checked between middlewares; a non-terminating middleware
// still blocks the chain, matching the synchronous mode. No timeout is
// enforced here - layer one onto goCtx if wanted.
func ExecuteAsync(goCtx context.Context, r *junction.Request, c *junction.Context, mws []junction.Middleware) <-chan ChainResult {
	ch := make(chan ChainResult, 1)

	go func() {
		for _, mw := range mws {
			select {
			case <-goCtx.Done():
				ch <- ChainResult{Err: goCtx.Err()}
				return
			default:
			}

			res, err := mw(r, c)
			if err != nil {
				ch <- ChainResult{Err: err}
				return
			}

			if res != nil {
				ch <- ChainResult{Response: res}
				return
			}
		}

		ch <- ChainResult{Response: NotFound()}
	}()

	return ch
}

// NotFound constructs the response owed when no middleware matches.
func NotFound() *junction.Response {
	return &junction.Response{
		Status: http.StatusNotFound,
		Header: make(http.Header),
		Body:   []byte(http.StatusText(http.StatusNotFound)),
	}
}
