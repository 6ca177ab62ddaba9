package middleware

import (
	"bytes"
	"crypto/sha256"
	"hash"
	"net/http"
	"sync"

	"github.com/junction-http/junction"
	"github.com/junction-http/junction/event"
)

const (
	IdempotencyHeader = "Idempotency-Key"
)

var (
	hasherLock   = sync.Mutex{}
	defaultCache = NewIdemResMap()
	defaultHash  = sha256.New()
)

// Idempotent enables features of idempotency on POST routes.
// GET, DELETE, PUT, & PATCH are idempotent by definition.
//
// Idempotent pulls a key (a UUID v4 string) from request headers
// to base the uniqueness of a POST request around.
//
// If a previous request has not used that key, Idempotent reserves the
// key and passes the request along; subscribe the returned
// [event.Listener] to [event.After] so the response produced further
// down the chain is paired to the key.
//
// If that key has been used before (and has not expired),
// Idempotent falls into one of these scenarios:
//
//   - if a status code has not been set for that key,
//     Idempotent responds 409 since the idempotent request is still processing
//
//   - if the newly requested resource (the URI) or the request body does
//     not match the original's, Idempotent responds 422
//
//   - Idempotent responds with the status code and body set for the key
//
// cache and hasher can be nil.
// Idempotent will use a default cache and implementation of hash.Hash, accordingly.
//
// Idempotent implements the draft Idempotent HTTP Header Field specification:
// https://tools.ietf.org/id/draft-idempotency-header-01.html
func Idempotent(cache IdempotencyCacher, hasher hash.Hash) (junction.Middleware, event.Listener) {
	if cache == nil {
		cache = defaultCache
	}

	if hasher == nil {
		hasher = defaultHash
	}

	mw := func(r *junction.Request, c *junction.Context) (*junction.Response, error) {
		if r.Method != http.MethodPost {
			return status(http.StatusMethodNotAllowed), nil
		}

		key := r.Header.Get(IdempotencyHeader)
		if key == "" {
			return status(http.StatusBadRequest), nil
		}

		sum := bodySum(hasher, r.Body)

		ir, ok := cache.Get(c.Ctx, key)
		if ok {
			if ir.Status == 0 {
				return status(http.StatusConflict), nil
			}

			if ir.URI != r.URL || !bytes.Equal(ir.Req, sum) {
				return status(http.StatusUnprocessableEntity), nil
			}

			res := status(ir.Status)
			res.Body = ir.Body
			return res, nil
		}

		cache.Set(c.Ctx, key, IdemRes{URI: r.URL, Req: sum})
		c.Set(junction.IdempotencyKey, key)
		return nil, nil
	}

	// The writeback listener pairs the response the rest of the chain
	// produced with the reservation the middleware made. The context
	// marker keeps one dispatch's 409 from overwriting another's
	// reservation.
	writeback := func(e event.Event) {
		if e.Request == nil || e.Response == nil || e.Context == nil {
			return
		}

		key, ok := e.Context.Value(junction.IdempotencyKey).(string)
		if !ok || key == "" {
			return
		}

		ir, ok := cache.Get(e.Context.Ctx, key)
		if !ok || ir.Status != 0 {
			return
		}

		ir.Status = e.Response.Status
		ir.Body = e.Response.Body
		cache.Set(e.Context.Ctx, key, ir)
	}

	return mw, writeback
}

// bodySum hashes body with the shared hasher.
func bodySum(hasher hash.Hash, body []byte) []byte {
	hasherLock.Lock()
	defer hasherLock.Unlock()

	hasher.Reset()
	hasher.Write(body)
	return hasher.Sum(nil)
}

func status(code int) *junction.Response {
	return &junction.Response{
		Status: code,
		Header: make(http.Header),
		Body:   []byte(http.StatusText(code)),
	}
}
