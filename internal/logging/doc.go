// Package logging provides structured logging for the picohttp server.
//
// This package wraps zap logger with convenience functions for the logging
// patterns used throughout the server: connection lifecycle events, TLS
// handshake outcomes, request lines and responses.
//
// # Log Levels
//
//   - Debug: raw request bytes, hex dumps, silent-close details
//   - Info: connections, handshakes, requests, responses
//   - Warn: non-fatal issues (transient accept failures)
//   - Error: per-connection I/O failures, startup errors
//
// # Configuration
//
// Initialize logging at server startup:
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// When the level is empty, the PICOHTTP_LOG_LEVEL environment variable is
// consulted; if that is also unset, logging is silent. All logging
// functions are safe for concurrent use.
package logging
