package server

import (
	"log"
	"net"
	"net/http"
	"os"

	"github.com/jacksonlee411/health-listener/internal/config"
	"github.com/jacksonlee411/health-listener/pkg/httperr"
)

// Server owns the listener for the process lifetime. There is no drain
// phase: the process runs until it is killed.
type Server struct {
	cfg config.Config
	srv *http.Server

	// InfoLog receives the startup line.
	InfoLog *log.Logger
}

func New(cfg config.Config, h http.Handler) *Server {
	return &Server{
		cfg: cfg,
		srv: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           h,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			// Accept errors and per-connection failures land here; none of
			// them stop the accept loop.
			ErrorLog: log.New(os.Stderr, "health: ", log.LstdFlags),
		},
		InfoLog: log.New(os.Stdout, "", log.LstdFlags),
	}
}

// Listen binds the configured address. Failures are *httperr.BindError.
func (s *Server) Listen() (net.Listener, error) {
	l, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return nil, httperr.NewBindError(s.cfg.Addr(), err)
	}
	return l, nil
}

// Serve accepts on l until the listener fails permanently or Close is called.
// Each connection is served on its own goroutine.
func (s *Server) Serve(l net.Listener) error {
	return s.srv.Serve(l)
}

func (s *Server) ListenAndServe() error {
	l, err := s.Listen()
	if err != nil {
		return err
	}
	s.InfoLog.Printf("health listener on %s", l.Addr())
	return s.Serve(l)
}

// Close stops the listener and drops open connections immediately.
func (s *Server) Close() error {
	return s.srv.Close()
}
