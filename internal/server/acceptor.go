package server

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/alfagnish/users-api/internal/config"
)

// Server owns the listening socket and the accept loop. Each accepted
// connection gets its own goroutine running one session; the loop re-arms
// immediately and ignores individual accept errors.
type Server struct {
	cfg     *config.Config
	handler http.Handler
	ln      net.Listener
}

// New creates a server for the given variant configuration and router.
func New(cfg *config.Config, handler http.Handler) *Server {
	return &Server{cfg: cfg, handler: handler}
}

// Listen binds the IPv4 listener and, for the TLS variant, loads the
// certificate chain and private key and wraps the listener. Certificate
// problems surface here, before any connection is accepted.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp4", s.cfg.ListenAddr)
	if err != nil {
		return err
	}

	if s.cfg.TLS {
		cert, err := tls.LoadX509KeyPair(s.cfg.CertFile, s.cfg.KeyFile)
		if err != nil {
			ln.Close()
			return fmt.Errorf("load certificates: %w", err)
		}
		// Server-side TLS pinned to 1.2. No client certificates are
		// requested.
		ln = tls.NewListener(ln, &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
			MaxVersion:   tls.VersionTLS12,
		})
	}

	s.ln = ln
	return nil
}

// Addr returns the bound listener address. Valid after Listen.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Serve prints the startup banner and runs the accept loop until the
// listener is closed. Accept errors other than closure are ignored and the
// loop re-arms.
func (s *Server) Serve() error {
	s.printBanner()
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			continue
		}
		go newSession(conn, s.handler).serve()
	}
}

// ListenAndServe binds the listener and serves until closed.
func (s *Server) ListenAndServe() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Close shuts the listener down, ending the accept loop. In-flight
// sessions finish on their own.
func (s *Server) Close() error {
	if s.ln == nil {
		return nil
	}
	return s.ln.Close()
}

func (s *Server) printBanner() {
	port := s.cfg.ListenAddr
	if addr, ok := s.ln.Addr().(*net.TCPAddr); ok {
		port = fmt.Sprintf("%d", addr.Port)
	}
	fmt.Printf("REST API running on %s://localhost:%s\n", s.cfg.Scheme, port)
	fmt.Println("  GET    /api/users     - List all users")
	fmt.Println("  GET    /api/users/:id - Get user by ID")
	fmt.Println("  POST   /api/users     - Create new user")
}
