package bridge

import (
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/junction-http/junction"
	"github.com/junction-http/junction/logger"
	"github.com/junction-http/junction/router"
)

// A Dispatcher drives an in-memory request through a middleware chain.
// *router.Router implements it.
type Dispatcher interface {
	RouteSync(partial junction.Request, opts ...router.RouteOptFn) (*junction.RouteResult, error)
}

// A Handler translates HTTP traffic into dispatches on a Dispatcher.
type Handler struct {
	d Dispatcher
	l logger.Logger
}

// New adapts d into an [net/http.Handler], wrapped with response
// compression and panic recovery.
//
// Redirect responses pass through to the HTTP client untouched rather
// than being followed in-process; the client owns redirect behavior on
// this surface.
func New(d Dispatcher, opts ...HandlerOptFn) http.Handler {
	h := &Handler{d: d}
	for _, opt := range opts {
		opt(h)
	}

	if h.l == nil {
		h.l = logger.New()
	}

	return handlers.CompressHandler(handlers.RecoveryHandler()(h))
}

// ServeHTTP responds to an HTTP request by dispatching it.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.l.Error("reading request body failed", &logger.LogContext{Error: err})
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result, err := h.d.RouteSync(junction.Request{
		Method: r.Method,
		URL:    r.URL.RequestURI(),
		Header: r.Header,
		Body:   body,
	}, router.SkipRedirects())
	if err != nil {
		h.l.Error("dispatch failed", &logger.LogContext{Error: err})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	for k, vals := range result.Header {
		for _, v := range vals {
			w.Header().Add(k, v)
		}
	}

	w.WriteHeader(result.Status)
	if _, err := w.Write(result.Body); err != nil {
		h.l.Error("writing response body failed", &logger.LogContext{Error: err})
	}
}

// A HandlerOptFn is a functional option configuring a Handler when
// constructing a new one.
type HandlerOptFn func(*Handler)

// WithHandlerLogger sets the Logger the Handler reports through.
func WithHandlerLogger(l logger.Logger) HandlerOptFn {
	return func(h *Handler) {
		h.l = l
	}
}
