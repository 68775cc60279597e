package server

import (
	"crypto/tls"
	"testing"
)

func TestNewTLSConfig(t *testing.T) {
	certPath, keyPath := writeTestCertificates(t, t.TempDir())

	cfg, err := NewTLSConfig(certPath, keyPath)
	if err != nil {
		t.Fatalf("NewTLSConfig() error = %v", err)
	}

	if cfg.MinVersion != tls.VersionTLS12 {
		t.Errorf("MinVersion = 0x%04x, want TLS 1.2", cfg.MinVersion)
	}
	if cfg.MaxVersion != 0 {
		t.Errorf("MaxVersion should be unset so newer versions negotiate, got 0x%04x", cfg.MaxVersion)
	}
	if len(cfg.Certificates) != 1 {
		t.Errorf("Certificates has %d entries, want 1", len(cfg.Certificates))
	}
}

func TestNewTLSConfigMissingFiles(t *testing.T) {
	if _, err := NewTLSConfig("nope.crt", "nope.key"); err == nil {
		t.Error("NewTLSConfig() should fail on missing files")
	}
}

func TestGetTLSInfo(t *testing.T) {
	certPath, keyPath := writeTestCertificates(t, t.TempDir())
	cfg, err := NewTLSConfig(certPath, keyPath)
	if err != nil {
		t.Fatalf("NewTLSConfig() error = %v", err)
	}

	info := GetTLSInfo(cfg)
	if info["min_version"] != "TLS 1.2" {
		t.Errorf("min_version = %v, want TLS 1.2", info["min_version"])
	}
	if info["num_certs"] != 1 {
		t.Errorf("num_certs = %v, want 1", info["num_certs"])
	}
}
