/*

Package main provides a toy example use of junction's routing stack.

*/
package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/junction-http/junction"
	"github.com/junction-http/junction/bridge"
	"github.com/junction-http/junction/event"
	"github.com/junction-http/junction/logger"
	"github.com/junction-http/junction/middleware"
	"github.com/junction-http/junction/router"
)

func main() {
	l := logger.New(logger.WithLevel(logger.LogLevelDebug))
	r := router.New(router.WithEnv(junction.Development), router.WithLogger(l))

	r.Use(middleware.RequestID(junction.RequestIDKey))
	r.Use(middleware.LogRequest(l))
	r.Use(middleware.RateLimit(middleware.NewVisitors()))

	registerRoutes(r, l)

	r.On(event.After, func(e event.Event) {
		l.Debug(fmt.Sprintf("%s %s finished with %d", e.Request.Method, e.Request.URL, e.Response.Status), nil)
	})

	// Dispatch a couple of requests in-process before serving HTTP.
	result, err := r.RouteSync(junction.Request{Method: http.MethodGet, URL: "/hello/junction"})
	if err != nil {
		log.Fatal(err)
	}
	l.Info(fmt.Sprintf("in-process dispatch: %d %s", result.Status, result.Body), nil)

	result, err = r.RouteSync(junction.Request{Method: http.MethodGet, URL: "/old-home"})
	if err != nil {
		log.Fatal(err)
	}
	l.Info(fmt.Sprintf("redirect followed to %s (redirected=%t)", result.URL, result.Redirected), nil)

	srv := bridge.NewServer(bridge.New(r, bridge.WithHandlerLogger(l)), bridge.WithServerLogger(l))
	if err := srv.Guide(); err != nil {
		log.Fatal(err)
	}
}

func registerRoutes(r *router.Router, l logger.Logger) {
	must(r.Get("/hello/{name}", junction.Middleware(greet)))

	must(r.Get("/old-home", junction.Response{
		Status: http.StatusMovedPermanently,
		Header: http.Header{"Location": []string{"/hello/visitor"}},
	}))

	must(r.Post("/broken", junction.Middleware(
		func(*junction.Request, *junction.Context) (*junction.Response, error) {
			return nil, errors.New("the example teapot is out of tea")
		},
	)))

	r.HandleNotFound(func(*junction.Request, *junction.Context) (*junction.Response, error) {
		return &junction.Response{
			Status: http.StatusNotFound,
			Body:   []byte("nothing down this path"),
		}, nil
	})

	r.On(event.Error, func(e event.Event) {
		l.Error(fmt.Sprintf("%s %s failed: %s", e.Request.Method, e.Request.URL, e.Err), nil)
	})
}

func greet(req *junction.Request, c *junction.Context) (*junction.Response, error) {
	body := fmt.Sprintf("hello, %s! (dispatch %s)", req.Param("name"), c.ID)
	return &junction.Response{Status: http.StatusOK, Body: []byte(body)}, nil
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
