// Picohttp is a minimal web server built directly on raw TCP sockets,
// in plaintext and TLS-wrapped variants.
//
// It serves a tiny fixed set of HTML pages with exactly one
// request/response exchange per connection, and exists to make the
// accept-loop → transport → request → response pipeline visible rather
// than to be a production web server.
//
// Usage:
//
//	picohttp serve [flags]
//	picohttp gencert [flags]
//
// See 'picohttp serve --help' for available options.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mgoral/picohttp/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "picohttp",
	Short: "Minimal raw-socket web server",
	Long: `A minimal web server implemented directly on stream sockets.

The server binds a TCP listener, accepts connections in a loop, and
serves each connection in its own goroutine: one bounded read, one
request-line parse, one canned HTML response, then close. With --tls
the accepted connection is wrapped in a TLS handshake before any
application logic runs.

Use 'picohttp gencert' to produce a self-signed certificate/key pair
for the TLS variant.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(gencertCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("picohttp %s (commit: %s)\n", version.Version, version.Commit)
	},
}
