package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	f := Defaults()

	if f.Version != 1 {
		t.Errorf("Defaults().Version = %v, want 1", f.Version)
	}
	if f.Server == nil {
		t.Fatal("Defaults().Server should not be nil")
	}
	if f.Server.Host != "127.0.0.1" {
		t.Errorf("default host = %q, want 127.0.0.1", f.Server.Host)
	}
	if f.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", f.Server.Port)
	}
	if f.Server.TLSPort != 8443 {
		t.Errorf("default TLS port = %d, want 8443", f.Server.TLSPort)
	}
	if f.Server.CertFile != "certs/server.crt" {
		t.Errorf("default cert file = %q, want certs/server.crt", f.Server.CertFile)
	}
	if f.Server.KeyFile != "certs/server.key" {
		t.Errorf("default key file = %q, want certs/server.key", f.Server.KeyFile)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	f, err := LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() on missing file: %v", err)
	}

	// Missing file should yield defaults
	if f.Server.Port != 8080 {
		t.Errorf("missing file should give default port 8080, got %d", f.Server.Port)
	}
}

func TestLoadFromPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `version: 1
server:
  port: 9090
  log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	f, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if f.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090 (from file)", f.Server.Port)
	}
	if f.Server.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug (from file)", f.Server.LogLevel)
	}

	// Unset fields fall back to built-in defaults
	if f.Server.Host != "127.0.0.1" {
		t.Errorf("host = %q, want default 127.0.0.1", f.Server.Host)
	}
	if f.Server.TLSPort != 8443 {
		t.Errorf("TLS port = %d, want default 8443", f.Server.TLSPort)
	}
}

func TestLoadFromBadVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 7\n"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should reject unsupported config version")
	}
}

func TestLoadFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should fail on invalid YAML")
	}
}

func TestGetConfigPath(t *testing.T) {
	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(path) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", path)
	}
	if !contains(path, "picohttp") {
		t.Errorf("GetConfigPath() = %v, should contain 'picohttp'", path)
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
