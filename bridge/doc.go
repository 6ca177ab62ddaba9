// Package bridge mounts a junction router onto net/http.
//
// [New] adapts a router into an [net/http.Handler], translating each
// *http.Request into an in-memory [junction.Request] and writing the
// resulting [junction.RouteResult] back out. [NewServer] wraps that
// handler in an *http.Server with signal-driven graceful shutdown:
//
//	r := router.New()
//	r.Get("/ping", junction.Response{Status: 200, Body: []byte("pong")})
//
//	srv := bridge.NewServer(bridge.New(r))
//	if err := srv.Guide(); err != nil {
//		log.Fatal(err)
//	}
package bridge
