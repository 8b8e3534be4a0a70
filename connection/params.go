package connection

import (
	"time"

	"github.com/kbukum/restsdk/config"
	"github.com/kbukum/restsdk/validation"
)

// Params is the connection-parameter set a Connection is shaped by.
// Params is comparable so equal sets can share a connection.
type Params struct {
	// ConnectTimeout bounds dialing. Zero means no limit.
	ConnectTimeout time.Duration `json:"http.connectiontimeout" validate:"gte=0"`
	// ReadTimeout bounds the wait for response headers. Zero means no limit.
	ReadTimeout time.Duration `json:"http.readtimeout" validate:"gte=0"`
	// MaxConnections caps connections per host. Zero means no limit.
	MaxConnections int `json:"http.maxconnection" validate:"gte=0"`
	// HTTP2 enables HTTP/2 negotiation over TLS.
	HTTP2 bool `json:"http.http2"`

	Proxy ProxyConfig `json:"http"`
	TLS   TLSConfig   `json:"http.tls"`
}

// ProxyConfig routes requests through an HTTP proxy when Enabled.
type ProxyConfig struct {
	Enabled  bool   `json:"useproxy"`
	Host     string `json:"proxyhost"`
	Port     int    `json:"proxyport" validate:"omitempty,min=1,max=65535"`
	Username string `json:"proxyusername"`
	Password string `json:"proxypassword"`
}

// ParamsFrom reads the connection parameters from cfg.
func ParamsFrom(cfg *config.Configuration) Params {
	return Params{
		ConnectTimeout: cfg.Millis(config.KeyConnectionTimeout, 0),
		ReadTimeout:    cfg.Millis(config.KeyReadTimeout, 0),
		MaxConnections: cfg.Int(config.KeyMaxConnection, 0),
		HTTP2:          cfg.Bool(config.KeyHTTP2, false),
		Proxy: ProxyConfig{
			Enabled:  cfg.Bool(config.KeyUseProxy, false),
			Host:     cfg.String(config.KeyProxyHost, ""),
			Port:     cfg.Int(config.KeyProxyPort, 0),
			Username: cfg.String(config.KeyProxyUsername, ""),
			Password: cfg.String(config.KeyProxyPassword, ""),
		},
		TLS: TLSConfig{
			SkipVerify: cfg.Bool(config.KeyTLSSkipVerify, false),
			CAFile:     cfg.String(config.KeyTLSCAFile, ""),
			CertFile:   cfg.String(config.KeyTLSCertFile, ""),
			KeyFile:    cfg.String(config.KeyTLSKeyFile, ""),
			ServerName: cfg.String(config.KeyTLSServerName, ""),
		},
	}
}

// Validate checks that the parameters can shape a connection.
func (p Params) Validate() error {
	return validation.New().
		Merge("", validation.Validate(p)).
		Custom(!p.Proxy.Enabled || p.Proxy.Host != "", config.KeyProxyHost, "is required when http.useproxy is true").
		Merge("http.tls", p.TLS.Validate()).
		Validate()
}
