// Package route implements the collaborators a router dispatches
// through: request and context normalization, building route-bound
// middleware out of a method pattern, a path pattern, and a handler or
// static response, executing a middleware chain in either execution
// mode, and classifying plus following redirects.
//
// Path patterns use gorilla/mux syntax, so named parameters
// ("/users/{id}") and regexp constraints ("/articles/{id:[0-9]+}") work
// as they do there.
package route
