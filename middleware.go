package junction

// A Middleware is one unit of a router's ordered chain.
//
// Given the canonical Request and the dispatch Context, a Middleware
// either produces a Response, fails with an error, or returns
// (nil, nil) to signal "no match, continue" so evaluation moves to the
// next unit in registration order. Raw middlewares registered with
// Router.Use and route-bound middlewares synthesized by the route
// package present this same contract.
type Middleware func(r *Request, c *Context) (*Response, error)
