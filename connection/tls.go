package connection

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// TLSConfig holds the TLS settings of a connection.
type TLSConfig struct {
	// SkipVerify disables server certificate verification.
	// Not recommended for production.
	SkipVerify bool `json:"skipverify"`

	// CAFile is the path to the CA certificate file for verifying the server.
	CAFile string `json:"cafile"`

	// CertFile is the path to the client TLS certificate file (for mTLS).
	CertFile string `json:"certfile"`

	// KeyFile is the path to the client TLS key file (for mTLS).
	KeyFile string `json:"keyfile"`

	// ServerName overrides the server name used for certificate verification.
	ServerName string `json:"servername"`
}

// Build creates a *tls.Config from the configuration.
// Returns nil if no TLS settings are configured.
func (c TLSConfig) Build() (*tls.Config, error) {
	if !c.IsEnabled() {
		return nil, nil
	}

	cfg := &tls.Config{
		InsecureSkipVerify: c.SkipVerify, //nolint:gosec // opt-in through http.tls.skipverify
		ServerName:         c.ServerName,
		MinVersion:         tls.VersionTLS12,
	}

	if err := c.loadCA(cfg); err != nil {
		return nil, err
	}
	if err := c.loadClientCert(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the TLS configuration is consistent.
func (c TLSConfig) Validate() error {
	if (c.CertFile != "") != (c.KeyFile != "") {
		return fmt.Errorf("both http.tls.certfile and http.tls.keyfile must be provided together")
	}
	return nil
}

// IsEnabled returns true if any TLS setting is configured.
func (c TLSConfig) IsEnabled() bool {
	return c.SkipVerify || c.CAFile != "" || c.CertFile != "" || c.ServerName != ""
}

func (c TLSConfig) loadCA(cfg *tls.Config) error {
	if c.CAFile == "" {
		return nil
	}
	ca, err := os.ReadFile(c.CAFile)
	if err != nil {
		return fmt.Errorf("connection/tls: failed to read CA file: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(ca) {
		return fmt.Errorf("connection/tls: failed to parse CA certificate")
	}
	cfg.RootCAs = pool
	return nil
}

func (c TLSConfig) loadClientCert(cfg *tls.Config) error {
	if c.CertFile == "" || c.KeyFile == "" {
		return nil
	}
	cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
	if err != nil {
		return fmt.Errorf("connection/tls: failed to load client certificate: %w", err)
	}
	cfg.Certificates = []tls.Certificate{cert}
	return nil
}
