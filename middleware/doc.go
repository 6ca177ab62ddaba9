// Package middleware provides stock [junction.Middleware] for common
// cross-cutting concerns: request IDs, request logging, rate limiting,
// bearer-token authentication, and idempotent POST handling.
//
// Every middleware here follows the chain contract: return (nil, nil)
// to pass the request along, or a response to end evaluation. Register
// them ahead of route-bound handlers so they observe every request:
//
//	r := router.New()
//	r.Use(middleware.RequestID(junction.RequestIDKey))
//	r.Use(middleware.RateLimit(middleware.NewVisitors()))
//	r.Get("/profile", profileHandler)
package middleware
