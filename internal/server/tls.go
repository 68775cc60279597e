package server

import (
	"crypto/tls"
	"fmt"

	"github.com/mgoral/picohttp/internal/logging"
	"go.uber.org/zap"
)

// NewTLSConfig loads the certificate chain and private key from the
// given PEM files and returns the server TLS configuration shared by
// every secured connection. The minimum protocol version is pinned to
// TLS 1.2; newer versions negotiate normally.
func NewTLSConfig(certPath, keyPath string) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	logging.Info("TLS configuration created from files",
		zap.String("cert", certPath),
		zap.String("key", keyPath),
		zap.String("min_version", "TLS 1.2"),
	)

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// GetTLSInfo returns human-readable TLS configuration information for
// startup logging.
func GetTLSInfo(config *tls.Config) map[string]interface{} {
	return map[string]interface{}{
		"min_version": logging.TLSVersionName(config.MinVersion),
		"num_certs":   len(config.Certificates),
	}
}
