package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/junction-http/junction"
	"golang.org/x/time/rate"
)

// A Visitor tracks a rate limiter and last seen time.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// A Visitors maps a Visitor to a client identity.
type Visitors struct {
	val map[string]Visitor
	sync.Mutex
}

func NewVisitors() *Visitors { return &Visitors{val: make(map[string]Visitor)} }

// Fetch retrieves the Visitor for the given id creating a new Visitor if not seen.
//
// Newly created visitors are limited to 5 requests every second with bursts of up to 20.
func (vs *Visitors) Fetch(id string) Visitor {
	vs.Lock()
	defer vs.Unlock()

	v, ok := vs.val[id]
	if !ok {
		v = Visitor{Limiter: rate.NewLimiter(5, 20)}
	}

	v.LastSeen = time.Now().UTC()
	vs.val[id] = v
	return v
}

// cleanup deletes a Visitor from Visitors if they have not been seen in over an hour.
func (vs *Visitors) cleanup() {
	vs.Lock()
	defer vs.Unlock()
	for id, v := range vs.val {
		if time.Since(v.LastSeen) > 60*time.Minute {
			delete(vs.val, id)
		}
	}
}

// RateLimit responds 429 to requests whose client identity (see
// [ClientID]) has exhausted its limiter, and passes all others along.
func RateLimit(visitors *Visitors) junction.Middleware {
	return func(r *junction.Request, _ *junction.Context) (*junction.Response, error) {
		if !visitors.Fetch(ClientID(r.Header)).Limiter.Allow() {
			return &junction.Response{
				Status: http.StatusTooManyRequests,
				Header: make(http.Header),
				Body:   []byte(http.StatusText(http.StatusTooManyRequests)),
			}, nil
		}

		visitors.cleanup()
		return nil, nil
	}
}

// ClientID derives a rate-limiting identity from the request headers,
// preferring X-Forwarded-For, then X-Real-IP. Requests carrying neither
// share the anonymous bucket.
func ClientID(h http.Header) string {
	if h == nil {
		return "anonymous"
	}

	if xff := h.Get("X-Forwarded-For"); xff != "" {
		return xff
	}

	if rip := h.Get("X-Real-IP"); rip != "" {
		return rip
	}

	return "anonymous"
}
