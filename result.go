package junction

// A RouteResult is handed back to the caller of a dispatch call: the
// final [Response] plus where the dispatch ended up.
type RouteResult struct {
	Response

	// URL is the target of the last Request actually dispatched.
	URL string

	// Redirected reports whether at least one redirect hop occurred.
	Redirected bool
}
