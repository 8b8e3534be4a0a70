package config

import "github.com/kbukum/restsdk/validation"

// DefaultRequestIDHeader carries the caller's request id when no header name is configured.
const DefaultRequestIDHeader = "X-Request-Id"

// Settings are the per-call values every request needs from the configuration.
type Settings struct {
	Endpoint        string `json:"service.endpoint" validate:"required,url"`
	RequestIDHeader string `json:"http.requestidheader" validate:"required"`
}

// ApplyDefaults applies default values to the settings.
func (s *Settings) ApplyDefaults() {
	if s.RequestIDHeader == "" {
		s.RequestIDHeader = DefaultRequestIDHeader
	}
}

// Validate validates the settings.
func (s Settings) Validate() error {
	return validation.Validate(s)
}
