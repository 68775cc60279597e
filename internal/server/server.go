package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/mgoral/picohttp/internal/discovery"
	"github.com/mgoral/picohttp/internal/logging"
	"github.com/mgoral/picohttp/internal/response"
	"github.com/mgoral/picohttp/internal/router"
	"go.uber.org/zap"
)

// Config holds the server configuration. It is immutable after New.
type Config struct {
	Host     string
	Port     int
	TLS      bool   // serve the secured variant
	CertPath string // path to certificate PEM file (TLS only)
	KeyPath  string // path to private key PEM file (TLS only)
	LogLevel string
	Announce bool // advertise the server over mDNS
}

// Server owns the listening socket and dispatches each accepted
// connection to its own goroutine. There is no shared mutable state
// between connections; the only shared resource is the read-only TLS
// configuration, built once before the accept loop starts.
type Server struct {
	config    *Config
	listener  net.Listener
	tlsConfig *tls.Config // nil for the plain variant
	router    *router.Router
	announcer *discovery.Announcer
	wg        sync.WaitGroup
	closed    atomic.Bool
}

// New creates a Server from config. In TLS mode the certificate and key
// files are loaded here, before any socket is bound; a missing file is a
// fatal configuration error.
func New(config *Config) (*Server, error) {
	if err := logging.Initialize(config.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	var tlsConfig *tls.Config
	if config.TLS {
		if _, err := os.Stat(config.CertPath); err != nil {
			return nil, fmt.Errorf("certificate file not found: %s", config.CertPath)
		}
		if _, err := os.Stat(config.KeyPath); err != nil {
			return nil, fmt.Errorf("private key file not found: %s", config.KeyPath)
		}

		var err error
		tlsConfig, err = NewTLSConfig(config.CertPath, config.KeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create TLS config: %w", err)
		}
	}

	return &Server{
		config:    config,
		tlsConfig: tlsConfig,
		router:    router.New(config.TLS),
	}, nil
}

// Listen binds the listening socket and starts the accept loop. Bind
// failure is fatal. Listen returns once the socket is accepting; use
// Start to also block until an interrupt.
func (s *Server) Listen() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", addr, err)
	}
	s.listener = listener

	scheme := "http"
	if s.config.TLS {
		scheme = "https"
		logging.Info("TLS configuration",
			zap.Any("tls_info", GetTLSInfo(s.tlsConfig)),
		)
	}

	logging.Info("Server listening for connections",
		zap.String("url", fmt.Sprintf("%s://%s", scheme, listener.Addr())),
		zap.Strings("paths", s.router.Paths()),
	)

	if s.config.Announce {
		port := listener.Addr().(*net.TCPAddr).Port
		announcer, err := discovery.Announce("picohttp", port)
		if err != nil {
			// Announcement is best-effort; the server still serves.
			logging.Warn("mDNS announcement failed", zap.Error(err))
		} else {
			s.announcer = announcer
		}
	}

	go s.acceptConnections()
	return nil
}

// Addr returns the bound listener address, useful when Port is 0.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Start binds the listener and blocks until SIGINT or SIGTERM, then
// shuts the server down.
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	logging.Info("Shutdown signal received, stopping server...")
	return s.Shutdown(context.Background())
}

// acceptConnections is the accept loop. Accept failures on a live
// listener are logged and the loop continues; only closing the listener
// ends it.
func (s *Server) acceptConnections() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() || errors.Is(err, net.ErrClosed) {
				return
			}
			logging.Warn("Failed to accept connection", zap.Error(err))
			continue
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConnection(conn)
		}()
	}
}

// newTransport selects the transport variant for an accepted connection.
// For the secured variant this performs the TLS handshake.
func (s *Server) newTransport(conn net.Conn) (Transport, error) {
	if s.tlsConfig == nil {
		return newPlainTransport(conn), nil
	}
	return newSecuredTransport(conn, s.tlsConfig)
}

// handleConnection serves exactly one request/response exchange and
// closes the connection. No error here ever reaches the accept loop.
func (s *Server) handleConnection(conn net.Conn) {
	remoteAddr := conn.RemoteAddr().String()
	logging.LogConnection(remoteAddr, "accepted")

	transport, err := s.newTransport(conn)
	if err != nil {
		// The failed transport constructor has already closed the
		// connection; nothing was read, nothing is sent.
		var hsErr *HandshakeError
		if errors.As(err, &hsErr) {
			logging.Error("TLS handshake failed",
				zap.String("remote_addr", remoteAddr),
				zap.Error(hsErr.Err),
			)
		} else {
			logging.Error("Failed to establish transport",
				zap.String("remote_addr", remoteAddr),
				zap.Error(err),
			)
		}
		return
	}

	defer func() {
		_ = transport.Close()
		logging.LogConnection(remoteAddr, "closed")
	}()

	if secured, ok := transport.(*securedTransport); ok {
		state := secured.State()
		logging.LogTLSHandshake(remoteAddr, state.Version, state.CipherSuite)
	}

	req, err := ReadRequest(transport)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyRequest), errors.Is(err, ErrMalformedRequest):
			// Silent close: the peer gets no response and this is not
			// an application error.
			logging.Debug("Closing without response",
				zap.String("remote_addr", remoteAddr),
				zap.String("reason", err.Error()),
			)
		default:
			logging.Error("Failed to read request",
				zap.String("remote_addr", remoteAddr),
				zap.Error(err),
			)
		}
		return
	}

	logging.LogRequestLine(remoteAddr, req.Method, req.Path)

	status, body := s.router.Route(req.Path)
	if _, err := transport.Write(response.Build(status, body)); err != nil {
		logging.Error("Failed to write response",
			zap.String("remote_addr", remoteAddr),
			zap.Error(err),
		)
		return
	}

	logging.LogResponse(remoteAddr, status, len(body))
}

// Shutdown closes the listening socket and waits a bounded grace period
// for in-flight connections to finish. In-flight connections are never
// force-closed; a stalled peer simply stops mattering once the process
// exits.
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")
	s.closed.Store(true)

	if s.announcer != nil {
		s.announcer.Shutdown()
	}

	if s.listener != nil {
		if err := s.listener.Close(); err != nil {
			logging.Error("Error closing listener", zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logging.Info("All connections finished")
	case <-ctx.Done():
		logging.Warn("Shutdown context cancelled, exiting with connections in flight")
	case <-time.After(5 * time.Second):
		logging.Warn("Shutdown grace period elapsed, exiting with connections in flight")
	}

	logging.Sync()
	return nil
}
