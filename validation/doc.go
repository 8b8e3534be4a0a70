// Package validation checks configuration-derived values before a call is
// dispatched.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Failures are reported as
// INVALID_CONFIG call errors listing every offending field.
//
// # Struct Tag Validation
//
//	type Settings struct {
//	    Endpoint string `json:"endpoint" validate:"required,url"`
//	}
//	err := validation.Validate(settings)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Custom(p.Proxy.Host != "", "proxy_host", "is required when the proxy is enabled")
//	if err := v.Validate(); err != nil { ... }
package validation
