package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mgoral/picohttp/internal/certgen"
	"github.com/mgoral/picohttp/internal/config"
	"github.com/mgoral/picohttp/internal/logging"
	"github.com/mgoral/picohttp/internal/server"
)

// Serve command and flags
var (
	cfgPath  string
	host     string
	port     int
	useTLS   bool
	certPath string
	keyPath  string
	logLevel string
	announce bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the web server on the configured host and port.

By default a plaintext HTTP listener is started on 127.0.0.1:8080.
With --tls, the server loads the certificate and key files at startup,
listens on port 8443, and performs a TLS handshake on every accepted
connection before reading the request. Missing certificate or key files
abort startup before the socket is bound.

Flag defaults come from the optional config file (see 'picohttp config
init'); explicit flags always win.`,
	Example: `  # Plain HTTP on the default 127.0.0.1:8080
  picohttp serve

  # TLS variant with the default certs/server.{crt,key} pair
  picohttp serve --tls

  # TLS on a custom address with verbose logging
  picohttp serve --tls --host 0.0.0.0 --port 9443 --log-level debug

  # Advertise the server over mDNS while serving
  picohttp serve --announce`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&cfgPath, "config", "", "Path to config file (default: OS config directory)")
	serveCmd.Flags().StringVar(&host, "host", "", "Host to bind (default 127.0.0.1)")
	serveCmd.Flags().IntVar(&port, "port", 0, "Port to bind (default 8080 plain, 8443 TLS)")
	serveCmd.Flags().BoolVar(&useTLS, "tls", false, "Serve the TLS-wrapped variant")
	serveCmd.Flags().StringVar(&certPath, "cert", "", "Path to TLS certificate file (default certs/server.crt)")
	serveCmd.Flags().StringVar(&keyPath, "key", "", "Path to TLS private key file (default certs/server.key)")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&announce, "announce", false, "Advertise the server over mDNS")
}

func runServe(cmd *cobra.Command, args []string) error {
	var cfg *config.File
	var err error
	if cfgPath != "" {
		cfg, err = config.LoadFrom(cfgPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override the config file, which overrides built-ins.
	defaults := cfg.Server
	if host == "" {
		host = defaults.Host
	}
	if port == 0 {
		if useTLS {
			port = defaults.TLSPort
		} else {
			port = defaults.Port
		}
	}
	if certPath == "" {
		certPath = defaults.CertFile
	}
	if keyPath == "" {
		keyPath = defaults.KeyFile
	}
	if logLevel == "" {
		logLevel = defaults.LogLevel
	}

	if useTLS {
		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			return fmt.Errorf("certificate file not found: %s (run 'picohttp gencert' to create one)", certPath)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			return fmt.Errorf("private key file not found: %s (run 'picohttp gencert' to create one)", keyPath)
		}
	}

	srv, err := server.New(&server.Config{
		Host:     host,
		Port:     port,
		TLS:      useTLS,
		CertPath: certPath,
		KeyPath:  keyPath,
		LogLevel: logLevel,
		Announce: announce,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// Gencert command and flags
var (
	gencertCert    string
	gencertKey     string
	gencertCSR     string
	gencertSubject string
	gencertDays    int
	gencertBits    int
)

var gencertCmd = &cobra.Command{
	Use:   "gencert",
	Short: "Generate a self-signed TLS certificate",
	Long: `Generate an RSA private key, a certificate signing request and a
self-signed certificate by invoking openssl, writing the PEM files the
TLS variant consumes at startup.

Browsers will warn about the self-signed certificate; that is expected.`,
	Example: `  # Write certs/server.crt and certs/server.key
  picohttp gencert

  # Custom paths and a longer validity
  picohttp gencert --cert tls/my.crt --key tls/my.key --days 730`,
	RunE: runGencert,
}

func init() {
	defaults := certgen.DefaultConfig()
	gencertCmd.Flags().StringVar(&gencertCert, "cert", defaults.CertPath, "Output path for the certificate")
	gencertCmd.Flags().StringVar(&gencertKey, "key", defaults.KeyPath, "Output path for the private key")
	gencertCmd.Flags().StringVar(&gencertCSR, "csr", defaults.CSRPath, "Output path for the signing request")
	gencertCmd.Flags().StringVar(&gencertSubject, "subject", defaults.Subject, "X.509 subject for the certificate")
	gencertCmd.Flags().IntVar(&gencertDays, "days", defaults.ValidDays, "Certificate validity in days")
	gencertCmd.Flags().IntVar(&gencertBits, "bits", defaults.KeyBits, "RSA key size in bits")
}

func runGencert(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize("info"); err != nil {
		return err
	}
	defer logging.Sync()

	cfg := certgen.DefaultConfig()
	cfg.CertPath = gencertCert
	cfg.KeyPath = gencertKey
	cfg.CSRPath = gencertCSR
	cfg.Subject = gencertSubject
	cfg.ValidDays = gencertDays
	cfg.KeyBits = gencertBits

	gen := certgen.NewGenerator(cfg, logging.GetLogger())
	if err := gen.Generate(cmd.Context()); err != nil {
		return err
	}

	fmt.Printf("Certificate written to %s\n", cfg.CertPath)
	fmt.Printf("Private key written to %s\n", cfg.KeyPath)
	return nil
}

// Config commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the picohttp configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Defaults().Save(); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Printf("Default configuration written to %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
