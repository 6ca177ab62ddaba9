package junction

import "context"

// A Context carries per-dispatch metadata alongside a [Request].
//
// A fresh Context is constructed at the start of every dispatch call and
// shared by each loop iteration of that call. Middlewares may stash
// values in it, but nothing written there outlives the dispatch.
type Context struct {
	// Execution tags which entry point began the dispatch,
	// [Synchronous] or [Asynchronous]. Set once, never mutated.
	Execution Execution

	// ID is the unique UUID for this dispatch call.
	ID string

	// Values is a scratch bag for middleware, keyed by [Key].
	Values map[Key]any

	// Ctx is the caller's [context.Context] on the asynchronous path
	// and [context.Background] on the synchronous one. Middlewares
	// performing their own I/O should honor it.
	Ctx context.Context
}

// Set stashes val under key for the remainder of the dispatch.
func (c *Context) Set(key Key, val any) {
	if c.Values == nil {
		c.Values = make(map[Key]any)
	}

	c.Values[key] = val
}

// Value retrieves the value stashed under key, or nil.
func (c *Context) Value(key Key) any { return c.Values[key] }
