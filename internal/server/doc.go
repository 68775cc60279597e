// Package server implements a minimal web server built directly on raw
// stream sockets, in plaintext and TLS-wrapped variants.
//
// The server accepts connections in a loop and serves each one in its
// own goroutine. A connection goes through exactly one exchange:
//
//	accept → (TLS handshake, secured variant only) → single bounded
//	read → request-line parse → static route lookup → serialized
//	response write → close
//
// No connection is ever reused; every response carries
// "Connection: close" and the socket is closed after the write
// regardless of what the client asked for.
//
// # Transport Variants
//
// The Plain/Secured split is decided once at construction from Config:
// when Config.TLS is set, the certificate and key are loaded into a
// single *tls.Config before the accept loop starts, and every accepted
// connection is wrapped via a TLS handshake before any application
// logic runs. A handshake failure is a distinct error (*HandshakeError)
// and never produces a response; the accept loop is unaffected.
//
// # Error Propagation
//
// No per-connection error ever crosses back to the accept loop. The
// server only fails fatally on startup: missing certificate or key
// files, or a bind failure. Transient accept errors are logged and the
// loop continues.
//
// # Concurrency
//
// One goroutine per accepted connection, with no admission control and
// no per-connection timeouts. A stalled peer occupies its goroutine
// indefinitely; this is an accepted limitation of the design, not a
// bug. The WaitGroup exists only so Shutdown can wait a bounded grace
// period for in-flight exchanges.
package server
