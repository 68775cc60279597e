package server

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
)

// Transport is the byte stream a connection is served over, independent
// of whether encryption is applied. The variant is decided once at
// server construction: a server either wraps every accepted connection
// in TLS or none of them.
type Transport interface {
	io.ReadWriteCloser

	// RemoteAddr returns the peer address of the underlying connection.
	RemoteAddr() net.Addr
}

// HandshakeError reports a failed TLS negotiation. It is distinct from
// ordinary I/O errors so the handler can tell a connection that never
// became secure from one that failed mid-exchange.
type HandshakeError struct {
	RemoteAddr string
	Err        error
}

func (e *HandshakeError) Error() string {
	return fmt.Sprintf("tls handshake with %s failed: %v", e.RemoteAddr, e.Err)
}

func (e *HandshakeError) Unwrap() error {
	return e.Err
}

// plainTransport passes reads and writes straight through to the
// accepted connection.
type plainTransport struct {
	conn net.Conn
}

func newPlainTransport(conn net.Conn) *plainTransport {
	return &plainTransport{conn: conn}
}

func (t *plainTransport) Read(p []byte) (int, error)  { return t.conn.Read(p) }
func (t *plainTransport) Write(p []byte) (int, error) { return t.conn.Write(p) }
func (t *plainTransport) Close() error                { return t.conn.Close() }
func (t *plainTransport) RemoteAddr() net.Addr        { return t.conn.RemoteAddr() }

// securedTransport wraps the accepted connection in TLS. The handshake
// runs in the constructor; after it completes, reads and writes
// transparently decrypt and encrypt.
type securedTransport struct {
	conn  *tls.Conn
	state tls.ConnectionState
}

// newSecuredTransport performs the TLS handshake on conn using the
// shared server TLS configuration. On handshake failure the connection
// is closed and a *HandshakeError is returned; the transport is only
// usable when the error is nil.
func newSecuredTransport(conn net.Conn, config *tls.Config) (*securedTransport, error) {
	tlsConn := tls.Server(conn, config)
	if err := tlsConn.Handshake(); err != nil {
		_ = tlsConn.Close()
		return nil, &HandshakeError{
			RemoteAddr: conn.RemoteAddr().String(),
			Err:        err,
		}
	}

	return &securedTransport{
		conn:  tlsConn,
		state: tlsConn.ConnectionState(),
	}, nil
}

func (t *securedTransport) Read(p []byte) (int, error)  { return t.conn.Read(p) }
func (t *securedTransport) Write(p []byte) (int, error) { return t.conn.Write(p) }
func (t *securedTransport) Close() error                { return t.conn.Close() }
func (t *securedTransport) RemoteAddr() net.Addr        { return t.conn.RemoteAddr() }

// State returns the negotiated session parameters.
func (t *securedTransport) State() tls.ConnectionState {
	return t.state
}
