package route

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/junction-http/junction"
)

// MaxRedirects caps how many hops a dispatch loop follows,
// matching the limit net/http's client enforces.
const MaxRedirects = 10

// IsRedirect reports whether res represents a followable HTTP redirect:
// a 3xx redirect status paired with a Location header. A redirect status
// without a Location is terminal, not followable.
func IsRedirect(res *junction.Response) bool {
	switch res.Status {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return res.Location() != ""
	default:
		return false
	}
}

// FollowUp constructs the request for the next hop from the redirect
// response res to the request r, per the usual method-on-redirect rules:
// 303 always rewrites to GET and drops the body; 301 and 302 rewrite
// POST to GET and drop the body; 307 and 308 preserve method and body.
// The Location header is resolved against r's URL.
func FollowUp(r *junction.Request, res *junction.Response) (*junction.Request, error) {
	loc := res.Location()
	if loc == "" {
		return nil, fmt.Errorf("%w: redirect Location header", junction.ErrMissingData)
	}

	base, err := r.ParseURL()
	if err != nil {
		return nil, fmt.Errorf("%w: request URL: %s", junction.ErrNotValid, err)
	}

	target, err := url.Parse(loc)
	if err != nil {
		return nil, fmt.Errorf("%w: redirect Location %q: %s", junction.ErrNotValid, loc, err)
	}

	next := r.Clone()
	next.URL = base.ResolveReference(target).String()

	switch res.Status {
	case http.StatusSeeOther:
		rewriteToGet(next)
	case http.StatusMovedPermanently, http.StatusFound:
		if next.Method == http.MethodPost {
			rewriteToGet(next)
		}
	}

	return next, nil
}

// rewriteToGet turns next into a bodyless GET, dropping the headers that
// described the body it no longer carries.
func rewriteToGet(next *junction.Request) {
	if next.Method == http.MethodGet || next.Method == http.MethodHead {
		return
	}

	next.Method = http.MethodGet
	next.Body = nil
	next.Header.Del("Content-Type")
	next.Header.Del("Content-Length")
	next.Header.Del("Transfer-Encoding")
}
