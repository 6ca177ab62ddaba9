package bridge

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/junction-http/junction"
	"github.com/junction-http/junction/logger"
)

// A Server runs an [net/http.Server] around a bridge handler.
type Server struct {
	l   logger.Logger
	srv *http.Server
}

// NewServer constructs a *Server for the handler.
//
// The listen address defaults to HOST and PORT from the environment
// (a .env file is honored), falling back to :3000.
func NewServer(h http.Handler, opts ...ServerOptFn) *Server {
	addr := fmt.Sprintf(
		"%s:%s",
		junction.EnvVarOrString("HOST", ""),
		junction.EnvVarOrString("PORT", "3000"),
	)

	s := &Server{
		srv: &http.Server{
			Addr:        addr,
			Handler:     h,
			ReadTimeout: junction.EnvVarOrDuration("SERVER_READ_TIMEOUT", 5*time.Second),
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.l == nil {
		s.l = logger.New()
	}

	return s
}

// Guide begins the web server.
//
// These, and [*Server.Shutdown], stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (s *Server) Guide() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)

	go func() {
		sig := <-ch
		s.l.Info(fmt.Sprint("received shutdown signal: ", sig), nil)
		cancel()
	}()

	go func() {
		s.l.Info(fmt.Sprintf("running web server at %s", s.srv.Addr), nil)
		if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
			err = fmt.Errorf("could not listen: %w", err)
			s.l.Error(err.Error(), nil)
		}
	}()

	<-ctx.Done()
	return s.Shutdown()
}

// Shutdown shutdowns the web server.
func (s *Server) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.l.Info("shutting down web server", nil)
	err := s.srv.Shutdown(shutdownCtx)
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	s.l.Info("web server shutdown successfully", nil)
	return nil
}

// A ServerOptFn is a functional option configuring a Server when
// constructing a new one.
type ServerOptFn func(*Server)

// WithServerAddr sets the address the Server listens on.
func WithServerAddr(addr string) ServerOptFn {
	return func(s *Server) {
		s.srv.Addr = addr
	}
}

// WithServerLogger sets the Logger the Server reports through.
func WithServerLogger(l logger.Logger) ServerOptFn {
	return func(s *Server) {
		s.l = l
	}
}
