package junction

type Key string

const (
	// CurrentUserKey stashes the authenticated subject for a dispatch.
	CurrentUserKey Key = "CurrentUserKey"

	// DispatchIDKey stashes a unique UUID for each dispatch call.
	DispatchIDKey Key = "DispatchIDKey"

	// IdempotencyKey stashes the idempotency key header value, if any.
	IdempotencyKey Key = "IdempotencyKey"

	// RequestIDKey stashes a unique UUID for each request routed.
	RequestIDKey Key = "RequestIDKey"
)

// String formats the stringified key with additional contextual information.
func (k Key) String() string {
	return "junction context key: " + string(k)
}
