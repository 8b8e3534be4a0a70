// Package request derives the per-call request description from the loaded
// configuration and the caller's identity.
package request

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/kbukum/restsdk/codec"
	"github.com/kbukum/restsdk/config"
	"github.com/kbukum/restsdk/connection"
	"github.com/kbukum/restsdk/validation"
	"github.com/kbukum/restsdk/version"
)

// Header names set on every call.
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
	HeaderUserAgent     = "User-Agent"
)

// Descriptor describes one outbound call. It lives for the duration of that call.
type Descriptor struct {
	// Method is the upper-cased HTTP method.
	Method string
	// ResourcePath is resolved against Settings.Endpoint as a URI reference.
	ResourcePath string
	Settings     config.Settings
	// Headers are fully populated by Build.
	Headers http.Header
	Params  connection.Params
}

// Build derives the descriptor of a call from cfg. It performs no I/O and
// cannot fail; Validate reports descriptors that cannot be sent.
func Build(cfg *config.Configuration, method, resourcePath, token, requestID string) *Descriptor {
	settings := cfg.Settings()

	headers := make(http.Header, 5)
	headers.Set(HeaderAuthorization, Authorization(token))
	headers.Set(HeaderContentType, codec.ContentTypeJSON)
	headers.Set(HeaderAccept, codec.ContentTypeJSON)
	headers.Set(HeaderUserAgent, UserAgent())
	if requestID != "" {
		headers.Set(settings.RequestIDHeader, requestID)
	}

	return &Descriptor{
		Method:       strings.ToUpper(strings.TrimSpace(method)),
		ResourcePath: resourcePath,
		Settings:     settings,
		Headers:      headers,
		Params:       connection.ParamsFrom(cfg),
	}
}

// Validate checks that the descriptor can be sent.
func (d *Descriptor) Validate() error {
	return validation.New().
		Merge("", d.Settings.Validate()).
		Merge("", d.Params.Validate()).
		Required("method", d.Method).
		Custom(hasCredentials(d.Headers.Get(HeaderAuthorization)), "access_token", "is required").
		Validate()
}

// URL resolves ResourcePath against the endpoint: a relative path replaces
// the last segment of the base path, a path starting with "/" replaces the
// whole path.
func (d *Descriptor) URL() (string, error) {
	return ResolveURL(d.Settings.Endpoint, d.ResourcePath)
}

// RequestID returns the request id header value, if any.
func (d *Descriptor) RequestID() string {
	return d.Headers.Get(d.Settings.RequestIDHeader)
}

// ResolveURL resolves ref against base as a URI reference.
func ResolveURL(base, ref string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", base, err)
	}
	if !baseURL.IsAbs() {
		return "", fmt.Errorf("endpoint %q is not an absolute URL", base)
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid resource path %q: %w", ref, err)
	}
	return baseURL.ResolveReference(refURL).String(), nil
}

// Authorization returns the Authorization header value for token. A token
// that already names a scheme ("Bearer abc", "Basic abc") is used as is.
func Authorization(token string) string {
	token = strings.TrimSpace(token)
	if strings.Contains(token, " ") {
		return token
	}
	return "Bearer " + token
}

var userAgent = sync.OnceValue(version.UserAgent)

// UserAgent returns the SDK identifying User-Agent value.
func UserAgent() string {
	return userAgent()
}

func hasCredentials(authorization string) bool {
	_, credentials, _ := strings.Cut(authorization, " ")
	return strings.TrimSpace(credentials) != ""
}
