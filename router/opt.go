package router

import (
	"github.com/junction-http/junction"
	"github.com/junction-http/junction/logger"
)

// A RouterOptFn is a functional option configuring a Router when
// constructing a new one.
type RouterOptFn func(*Router)

// WithEnv sets the environment the Router is operating in.
func WithEnv(env junction.Environment) RouterOptFn {
	return func(r *Router) {
		r.env = env
	}
}

// WithLogger sets the Logger the Router reports through.
func WithLogger(l logger.Logger) RouterOptFn {
	return func(r *Router) {
		r.l = l
	}
}

// A RouteOptFn is a functional option configuring one dispatch call.
type RouteOptFn func(*routeOpts)

type routeOpts struct {
	redirect bool
}

// newRouteOpts applies opts over the defaults: redirects are followed.
func newRouteOpts(opts []RouteOptFn) routeOpts {
	o := routeOpts{redirect: true}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// SkipRedirects makes the dispatch call return the first response
// produced, redirect or not, instead of following it.
func SkipRedirects() RouteOptFn {
	return func(o *routeOpts) {
		o.redirect = false
	}
}
