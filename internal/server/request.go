package server

import (
	"errors"
	"io"
	"strings"

	"github.com/mgoral/picohttp/internal/logging"
)

// readBufferSize bounds the single request read. Headers and body beyond
// this are never inspected, so there is nothing to gain from a larger
// buffer.
const readBufferSize = 1024

var (
	// ErrEmptyRequest means the peer closed the connection before
	// sending any bytes. Handled as a silent close, not an error.
	ErrEmptyRequest = errors.New("peer closed connection without sending a request")

	// ErrMalformedRequest means the request line had fewer than two
	// whitespace-separated tokens. Handled as a silent close.
	ErrMalformedRequest = errors.New("malformed request line")
)

// Request is the parsed request line of one exchange. Only the method
// and path tokens are ever extracted; remaining header lines and any
// body are read into the buffer but not interpreted.
type Request struct {
	Method string
	Path   string
}

// ReadRequest performs one bounded read from the transport and extracts
// the request line. The read is single-pass: a request line that arrives
// split across TCP segments is not reassembled and will parse as
// malformed. See DESIGN.md for why this limitation is kept.
func ReadRequest(r io.Reader) (*Request, error) {
	buf := make([]byte, readBufferSize)
	n, err := r.Read(buf)
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return nil, ErrEmptyRequest
		}
		return nil, err
	}

	data := string(buf[:n])
	logging.LogRawBytes("Raw request bytes", buf[:n])

	// First line up to CRLF is the request line; the rest is ignored.
	requestLine, _, _ := strings.Cut(data, "\r\n")

	fields := strings.Fields(requestLine)
	if len(fields) < 2 {
		return nil, ErrMalformedRequest
	}

	return &Request{
		Method: fields[0],
		Path:   fields[1],
	}, nil
}
