package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "picohttp"
	configFile = "config.yaml"
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// File represents the optional configuration file. All fields are
// defaults; command-line flags override them.
type File struct {
	Version int             `yaml:"version"`
	Server  *ServerDefaults `yaml:"server,omitempty"`
}

// ServerDefaults holds default server settings.
type ServerDefaults struct {
	Host     string `yaml:"host,omitempty"`
	Port     int    `yaml:"port,omitempty"`      // plain variant port
	TLSPort  int    `yaml:"tls_port,omitempty"`  // secured variant port
	CertFile string `yaml:"cert_file,omitempty"` // certificate PEM path
	KeyFile  string `yaml:"key_file,omitempty"`  // private key PEM path
	LogLevel string `yaml:"log_level,omitempty"`
}

// Defaults returns the built-in configuration used when no file exists.
func Defaults() *File {
	return &File{
		Version: 1,
		Server: &ServerDefaults{
			Host:     "127.0.0.1",
			Port:     8080,
			TLSPort:  8443,
			CertFile: "certs/server.crt",
			KeyFile:  "certs/server.key",
			LogLevel: "info",
		},
	}
}

// GetConfigDir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/picohttp or $HOME/.config/picohttp
//   - macOS: $HOME/.config/picohttp (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\picohttp
func GetConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			return "", fmt.Errorf("LOCALAPPDATA environment variable not set")
		}
		return filepath.Join(localAppData, appName), nil
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// GetConfigPath returns the full path of the configuration file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the configuration file from the default location. A
// missing file is not an error: the built-in defaults are returned.
func Load() (*File, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads a configuration file from an explicit path, filling
// unset fields from the built-in defaults.
func LoadFrom(path string) (*File, error) {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if f.Version != 1 {
		return nil, fmt.Errorf("unsupported config version: %d (expected 1)", f.Version)
	}

	f.applyDefaults()
	return &f, nil
}

// applyDefaults fills unset fields with the built-in defaults.
func (f *File) applyDefaults() {
	def := Defaults().Server
	if f.Server == nil {
		f.Server = def
		return
	}
	if f.Server.Host == "" {
		f.Server.Host = def.Host
	}
	if f.Server.Port == 0 {
		f.Server.Port = def.Port
	}
	if f.Server.TLSPort == 0 {
		f.Server.TLSPort = def.TLSPort
	}
	if f.Server.CertFile == "" {
		f.Server.CertFile = def.CertFile
	}
	if f.Server.KeyFile == "" {
		f.Server.KeyFile = def.KeyFile
	}
	if f.Server.LogLevel == "" {
		f.Server.LogLevel = def.LogLevel
	}
}

// Save writes the configuration to the default location.
// Performs an atomic write to prevent corruption on crash.
func (f *File) Save() error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# picohttp configuration file
# Values here are defaults; command-line flags override them.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
