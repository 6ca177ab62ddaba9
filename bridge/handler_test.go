package bridge_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/junction-http/junction"
	"github.com/junction-http/junction/bridge"
	"github.com/junction-http/junction/router"
	"github.com/stretchr/testify/require"
)

func newBridgedRouter(t *testing.T) http.Handler {
	t.Helper()

	r := router.New(router.WithEnv(junction.Testing))
	require.Nil(t, r.Get("/ping", junction.Response{Status: http.StatusOK, Body: []byte("pong")}))
	require.Nil(t, r.Get("/away", junction.Response{
		Status: http.StatusFound,
		Header: http.Header{"Location": []string{"/ping"}},
	}))
	require.Nil(t, r.Post("/echo", junction.Middleware(
		func(req *junction.Request, _ *junction.Context) (*junction.Response, error) {
			return &junction.Response{
				Status: http.StatusOK,
				Header: http.Header{"X-Echo-Method": []string{req.Method}},
				Body:   req.Body,
			}, nil
		},
	)))

	return bridge.New(r)
}

func TestHandlerServeHTTP(t *testing.T) {
	h := newBridgedRouter(t)

	for _, tc := range []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"Hit", http.MethodGet, "/ping", "", http.StatusOK, "pong"},
		{"Miss", http.MethodGet, "/nothing-here", "", http.StatusNotFound, http.StatusText(http.StatusNotFound)},
		{"Echo", http.MethodPost, "/echo", "hello", http.StatusOK, "hello"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))

			// Act
			h.ServeHTTP(w, req)

			// Assert
			require.Equal(t, tc.wantStatus, w.Code)
			require.Equal(t, tc.wantBody, w.Body.String())
		})
	}
}

func TestHandlerPassesRedirectsThrough(t *testing.T) {
	// Arrange
	h := newBridgedRouter(t)
	w := httptest.NewRecorder()

	// Act: the bridge does not follow in-process; the client owns redirects
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/away", nil))

	// Assert
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/ping", w.Result().Header.Get("Location"))
}

func TestHandlerCopiesResponseHeaders(t *testing.T) {
	// Arrange
	h := newBridgedRouter(t)
	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("x")))

	// Assert
	require.Equal(t, http.MethodPost, w.Result().Header.Get("X-Echo-Method"))
}
