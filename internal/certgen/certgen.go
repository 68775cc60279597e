package certgen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Config holds the parameters for certificate generation.
type Config struct {
	// OpenSSLPath is the path to the openssl binary.
	// Default: "openssl" (searches PATH)
	OpenSSLPath string

	// CertPath is where the self-signed certificate is written.
	CertPath string

	// KeyPath is where the RSA private key is written.
	KeyPath string

	// CSRPath is where the intermediate signing request is written.
	CSRPath string

	// Subject is the X.509 subject line passed to openssl req.
	Subject string

	// KeyBits is the RSA key size.
	KeyBits int

	// ValidDays is certificate validity in days.
	ValidDays int

	// Timeout is the maximum time to wait for each openssl invocation.
	Timeout time.Duration
}

// DefaultConfig returns a Config matching the server's default
// certificate paths.
func DefaultConfig() Config {
	return Config{
		OpenSSLPath: "openssl",
		CertPath:    "certs/server.crt",
		KeyPath:     "certs/server.key",
		CSRPath:     "certs/server.csr",
		Subject:     "/C=US/ST=California/L=San Francisco/O=My Company/CN=localhost",
		KeyBits:     2048,
		ValidDays:   365,
		Timeout:     time.Minute,
	}
}

// Generator produces a self-signed certificate/key pair by invoking
// openssl. The server itself never calls this; it only consumes the two
// resulting PEM files.
type Generator struct {
	config Config
	logger *zap.Logger
}

// NewGenerator creates a Generator with the given configuration.
func NewGenerator(config Config, logger *zap.Logger) *Generator {
	return &Generator{
		config: config,
		logger: logger,
	}
}

// commands returns the openssl invocations in execution order:
// private key, signing request, self-signed certificate.
func (g *Generator) commands() [][]string {
	return [][]string{
		{"genrsa", "-out", g.config.KeyPath, strconv.Itoa(g.config.KeyBits)},
		{"req", "-new", "-key", g.config.KeyPath, "-out", g.config.CSRPath,
			"-subj", g.config.Subject},
		{"x509", "-req", "-days", strconv.Itoa(g.config.ValidDays),
			"-in", g.config.CSRPath, "-signkey", g.config.KeyPath,
			"-out", g.config.CertPath},
	}
}

// Generate creates the output directory if needed and runs the three
// openssl steps. Any failing step aborts generation.
func (g *Generator) Generate(ctx context.Context) error {
	if dir := filepath.Dir(g.config.CertPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create certificate directory: %w", err)
		}
	}

	for _, args := range g.commands() {
		if err := g.run(ctx, args); err != nil {
			return err
		}
	}

	g.logger.Info("Self-signed certificate generated",
		zap.String("cert", g.config.CertPath),
		zap.String("key", g.config.KeyPath),
	)
	return nil
}

// run executes a single openssl invocation with the configured timeout.
func (g *Generator) run(ctx context.Context, args []string) error {
	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, g.config.OpenSSLPath, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	g.logger.Debug("Running openssl",
		zap.Strings("args", args),
	)

	if err := cmd.Run(); err != nil {
		if execErr, ok := err.(*exec.Error); ok && execErr.Err == exec.ErrNotFound {
			return fmt.Errorf("openssl is not installed or not found in PATH: %w", err)
		}
		return fmt.Errorf("openssl %s failed: %w\n%s", args[0], err, stderr.String())
	}

	return nil
}
