// Package router implements the orchestration core of junction: an
// ordered, append-only middleware chain, a lifecycle event bus, and two
// dispatch entry points that drive an in-memory request through the
// chain - [*Router.RouteSync] on the caller's goroutine and
// [*Router.RouteAsync] off it.
//
// Register middleware with [*Router.Use] or route-bound handlers with
// [*Router.Handle] and the HTTP verb aliases, subscribe lifecycle
// listeners with [*Router.On], then dispatch:
//
//	r := router.New()
//	r.Get("/hello/{name}", junction.Middleware(greet))
//	r.Get("/ping", junction.Response{Status: 200, Body: []byte("pong")})
//
//	result, err := r.RouteSync(junction.Request{Method: "get", URL: "/ping"})
//
// Registration is not safe concurrently with in-flight dispatches:
// register everything first, then dispatch from as many goroutines as
// wanted.
package router
