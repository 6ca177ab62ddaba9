package router

import (
	"context"
	"fmt"

	"github.com/junction-http/junction"
	"github.com/junction-http/junction/event"
	"github.com/junction-http/junction/logger"
	"github.com/junction-http/junction/route"
)

// A Router owns an ordered middleware chain and a lifecycle event bus,
// and dispatches in-memory requests through them.
//
// Construct with [New]. The zero value is not usable.
type Router struct {
	env      junction.Environment
	l        logger.Logger
	bus      *event.Bus
	mws      []junction.Middleware
	notFound junction.Middleware

	// errOwned flips when the first user listener subscribes to error
	// events; from then on the internal fallback reporter stays quiet,
	// even if the user later unsubscribes every listener.
	errOwned bool
}

// New constructs a *Router from the provided options.
func New(opts ...RouterOptFn) *Router {
	r := &Router{
		bus: event.New(),
		env: junction.EnvVarOrEnv("ENVIRONMENT", junction.Development),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.l == nil {
		r.l = logger.New(logger.WithEnv(r.env))
	}

	return r
}

// Use appends a raw middleware to the end of the chain. A nil middleware
// is ignored.
func (r *Router) Use(mw junction.Middleware) {
	if mw == nil {
		return
	}

	r.mws = append(r.mws, mw)
}

// Handle synthesizes a route-bound middleware for the method pattern,
// path pattern, and handler, and appends it to the chain.
//
// handler is a [junction.Middleware] or a [junction.Response] (partial
// responses welcome; unset fields are defaulted). Anything else fails
// here with [junction.ErrNotValid] - registration errors never travel
// through the event bus.
func (r *Router) Handle(method, pattern string, handler any) error {
	mw, err := route.New(method, pattern, handler)
	if err != nil {
		return err
	}

	r.mws = append(r.mws, mw)
	return nil
}

// HandleNotFound sets the middleware consulted after every registered
// middleware has passed on a request, replacing the default not-found
// response for requests it handles.
func (r *Router) HandleNotFound(mw junction.Middleware) { r.notFound = mw }

// All registers handler for the path pattern under any HTTP method.
func (r *Router) All(pattern string, handler any) error {
	return r.Handle(route.WildcardMethod, pattern, handler)
}

// Options registers handler for OPTIONS requests matching the path pattern.
func (r *Router) Options(pattern string, handler any) error {
	return r.Handle("OPTIONS", pattern, handler)
}

// Head registers handler for HEAD requests matching the path pattern.
func (r *Router) Head(pattern string, handler any) error {
	return r.Handle("HEAD", pattern, handler)
}

// Get registers handler for GET requests matching the path pattern.
func (r *Router) Get(pattern string, handler any) error {
	return r.Handle("GET", pattern, handler)
}

// Post registers handler for POST requests matching the path pattern.
func (r *Router) Post(pattern string, handler any) error {
	return r.Handle("POST", pattern, handler)
}

// Put registers handler for PUT requests matching the path pattern.
func (r *Router) Put(pattern string, handler any) error {
	return r.Handle("PUT", pattern, handler)
}

// Patch registers handler for PATCH requests matching the path pattern.
func (r *Router) Patch(pattern string, handler any) error {
	return r.Handle("PATCH", pattern, handler)
}

// Delete registers handler for DELETE requests matching the path pattern.
func (r *Router) Delete(pattern string, handler any) error {
	return r.Handle("DELETE", pattern, handler)
}

// On subscribes the listener to the given lifecycle event kind.
// Listeners fan out in subscription order.
//
// Until the first user listener subscribes to [event.Error], an
// internal fallback reports dispatch failures through the Router's
// Logger; that first subscription hands error reporting over to the
// user for good.
func (r *Router) On(kind event.Kind, fn event.Listener) error {
	if err := r.bus.Subscribe(kind, fn); err != nil {
		return err
	}

	if kind == event.Error {
		r.errOwned = true
	}

	return nil
}

// Off unsubscribes the exact listener from the given kind; a listener
// that was never subscribed is a no-op. Unsubscribing every error
// listener does not resurrect the internal fallback reporter.
func (r *Router) Off(kind event.Kind, fn event.Listener) {
	r.bus.Unsubscribe(kind, fn)
}

// RouteSync normalizes partial and drives it through the chain on the
// caller's goroutine, following redirects unless [SkipRedirects] is
// passed, and returns the final [junction.RouteResult].
//
// Normalization failures return here directly; once a canonical request
// and context exist, any dispatch failure fires exactly one error event
// before returning unchanged.
func (r *Router) RouteSync(partial junction.Request, opts ...RouteOptFn) (*junction.RouteResult, error) {
	req, err := route.NormalizeRequest(partial)
	if err != nil {
		return nil, err
	}

	c := route.NormalizeContext(junction.Synchronous, nil)
	return r.dispatch(req, c, newRouteOpts(opts), func(req *junction.Request, c *junction.Context) (*junction.Response, error) {
		return route.ExecuteSync(req, c, r.chain())
	})
}

// An AsyncResult is delivered on the channel [*Router.RouteAsync]
// returns: the result of the dispatch, or the error it would have
// raised synchronously.
type AsyncResult struct {
	Result *junction.RouteResult
	Err    error
}

// RouteAsync is the suspending variant of [*Router.RouteSync]: the
// chain runs off the caller's goroutine and exactly one [AsyncResult]
// is delivered on the returned channel. The error conditions match
// RouteSync's.
//
// goCtx is consulted between middlewares of each chain execution; no
// timeout is enforced internally, so wrap goCtx when one is wanted.
func (r *Router) RouteAsync(goCtx context.Context, partial junction.Request, opts ...RouteOptFn) <-chan AsyncResult {
	if goCtx == nil {
		goCtx = context.Background()
	}

	ch := make(chan AsyncResult, 1)
	go func() {
		req, err := route.NormalizeRequest(partial)
		if err != nil {
			ch <- AsyncResult{Err: err}
			return
		}

		c := route.NormalizeContext(junction.Asynchronous, goCtx)
		result, err := r.dispatch(req, c, newRouteOpts(opts), func(req *junction.Request, c *junction.Context) (*junction.Response, error) {
			got := <-route.ExecuteAsync(goCtx, req, c, r.chain())
			return got.Response, got.Err
		})

		ch <- AsyncResult{Result: result, Err: err}
	}()

	return ch
}

// dispatch runs the loop both entry points share: emit before, execute
// the chain, emit after, then either follow a redirect hop or finish.
// Any failure inside the loop is caught exactly once, reported via the
// error event, and returned to the caller unchanged.
func (r *Router) dispatch(
	req *junction.Request,
	c *junction.Context,
	opts routeOpts,
	exec func(*junction.Request, *junction.Context) (*junction.Response, error),
) (*junction.RouteResult, error) {
	var hops int
	for {
		r.bus.Publish(event.Event{Kind: event.Before, Request: req, Context: c})

		res, err := exec(req, c)
		if err != nil {
			r.emitError(req, c, err)
			return nil, err
		}

		r.bus.Publish(event.Event{Kind: event.After, Request: req, Response: res, Context: c})

		if !opts.redirect || !route.IsRedirect(res) {
			return &junction.RouteResult{
				Response:   *res,
				URL:        req.URL,
				Redirected: hops > 0,
			}, nil
		}

		if hops == route.MaxRedirects {
			err := fmt.Errorf("%w: stopped after %d hops", junction.ErrTooManyRedirects, hops)
			r.emitError(req, c, err)
			return nil, err
		}

		next, err := route.FollowUp(req, res)
		if err != nil {
			r.emitError(req, c, err)
			return nil, err
		}

		req = next
		hops++
	}
}

// chain returns the middleware list to execute, with the not-found
// middleware, if set, consulted last.
func (r *Router) chain() []junction.Middleware {
	if r.notFound == nil {
		return r.mws
	}

	return append(r.mws[:len(r.mws):len(r.mws)], r.notFound)
}

// emitError publishes the error event, reporting through the Router's
// Logger first when the user has not yet taken ownership of error
// handling. The event observes the failure; it never alters what the
// caller receives.
func (r *Router) emitError(req *junction.Request, c *junction.Context, err error) {
	if !r.errOwned {
		r.l.Error("dispatch failed", &logger.LogContext{
			Error:   err,
			Request: req,
			Data:    map[string]any{"dispatch_id": c.ID, "execution": c.Execution.String()},
		})
	}

	r.bus.Publish(event.Event{Kind: event.Error, Request: req, Err: err, Context: c})
}
