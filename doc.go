// Package junction houses the shared value objects and enumerations
// used throughout the junction routing toolkit.
//
// A [Request] is driven through an ordered chain of [Middleware] by a
// router (see the router package), either synchronously or
// asynchronously, producing a [RouteResult]. The types here are plain
// values: no sockets, no TLS, no transport. The bridge package mounts a
// router onto net/http when a real server is wanted.
package junction
