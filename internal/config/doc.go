// Package config loads and saves the optional picohttp configuration
// file. The file supplies server defaults (host, ports, certificate
// paths, log level); command-line flags always take precedence over it,
// and it takes precedence over the built-in defaults.
package config
