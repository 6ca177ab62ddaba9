package middleware_test

import (
	"net/http"
	"testing"

	"github.com/junction-http/junction"
	"github.com/junction-http/junction/event"
	"github.com/junction-http/junction/middleware"
	"github.com/junction-http/junction/router"
	"github.com/stretchr/testify/require"
)

func TestIdempotentGuards(t *testing.T) {
	// Arrange
	mw, _ := middleware.Idempotent(middleware.NewIdemResMap(), nil)

	// Act: non-POST
	r, c := newDispatch(t, "get", "/orders")
	res, err := mw(r, c)

	// Assert
	require.Nil(t, err)
	require.Equal(t, http.StatusMethodNotAllowed, res.Status)

	// Act: POST without a key
	r, c = newDispatch(t, "post", "/orders")
	res, err = mw(r, c)

	// Assert
	require.Nil(t, err)
	require.Equal(t, http.StatusBadRequest, res.Status)
}

func TestIdempotentReplay(t *testing.T) {
	// Arrange: a router whose POST handler counts invocations
	cache := middleware.NewIdemResMap()
	mw, writeback := middleware.Idempotent(cache, nil)

	var handled int
	r := router.New(router.WithEnv(junction.Testing))
	r.Use(mw)
	require.Nil(t, r.Post("/orders", junction.Middleware(
		func(*junction.Request, *junction.Context) (*junction.Response, error) {
			handled++
			return &junction.Response{Status: http.StatusCreated, Body: []byte("order-1")}, nil
		},
	)))
	require.Nil(t, r.On(event.After, writeback))

	req := junction.Request{
		Method: "post",
		URL:    "/orders",
		Header: http.Header{middleware.IdempotencyHeader: []string{"8a6d"}},
		Body:   []byte(`{"sku":"boots"}`),
	}

	// Act: first dispatch reaches the handler
	first, err := r.RouteSync(req)
	require.Nil(t, err)

	// Act: replay with the same key short-circuits
	second, err := r.RouteSync(req)
	require.Nil(t, err)

	// Assert
	require.Equal(t, 1, handled)
	require.Equal(t, http.StatusCreated, first.Status)
	require.Equal(t, http.StatusCreated, second.Status)
	require.Equal(t, []byte("order-1"), second.Body)
}

func TestIdempotentMismatch(t *testing.T) {
	// Arrange
	cache := middleware.NewIdemResMap()
	mw, writeback := middleware.Idempotent(cache, nil)

	r := router.New(router.WithEnv(junction.Testing))
	r.Use(mw)
	require.Nil(t, r.Post("/orders", junction.Response{Status: http.StatusCreated}))
	require.Nil(t, r.Post("/refunds", junction.Response{Status: http.StatusCreated}))
	require.Nil(t, r.On(event.After, writeback))

	header := http.Header{middleware.IdempotencyHeader: []string{"8a6d"}}
	_, err := r.RouteSync(junction.Request{Method: "post", URL: "/orders", Header: header, Body: []byte("a")})
	require.Nil(t, err)

	for _, tc := range []struct {
		name string
		req  junction.Request
	}{
		{"Different-URI", junction.Request{Method: "post", URL: "/refunds", Header: header, Body: []byte("a")}},
		{"Different-Body", junction.Request{Method: "post", URL: "/orders", Header: header, Body: []byte("b")}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			result, err := r.RouteSync(tc.req)

			// Assert
			require.Nil(t, err)
			require.Equal(t, http.StatusUnprocessableEntity, result.Status)
		})
	}
}

func TestIdemResGobRoundTrip(t *testing.T) {
	// Arrange
	ir := middleware.IdemRes{
		Body:   []byte("order-1"),
		Req:    []byte{0xde, 0xad},
		Status: http.StatusCreated,
		URI:    "/orders",
	}

	// Act
	b, err := ir.GobEncode()
	require.Nil(t, err)

	got := new(middleware.IdemRes)
	require.Nil(t, got.GobDecode(b))

	// Assert
	require.Equal(t, ir, *got)
}
