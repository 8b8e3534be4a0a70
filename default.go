package restsdk

import (
	"context"
	"io"
	"sync"

	"github.com/kbukum/restsdk/config"
	"github.com/kbukum/restsdk/diagnostics"
)

var defaultClient = sync.OnceValue(func() *Client {
	return New(WithStore(config.Default()))
})

// DefaultClient returns the client behind the package-level functions.
func DefaultClient() *Client {
	return defaultClient()
}

// InitConfigReader loads the process-wide configuration from a properties stream.
func InitConfigReader(r io.Reader) error {
	return config.Default().LoadReader(r)
}

// InitConfigFile loads the process-wide configuration from a properties file.
func InitConfigFile(path string) error {
	return config.Default().LoadFile(path)
}

// InitConfigMap loads the process-wide configuration from values. It cannot fail.
func InitConfigMap(values map[string]string) {
	config.Default().LoadMap(values)
}

// ConfigureAndExecute calls the configured service with accessToken and
// decodes the response into T.
func ConfigureAndExecute[T any](ctx context.Context, accessToken, method, resourcePath, payload string) (T, error) {
	return ConfigureAndExecuteWithContext[T](ctx, NewCallContext(accessToken), method, resourcePath, payload)
}

// ConfigureAndExecuteWithContext is ConfigureAndExecute with a request id.
func ConfigureAndExecuteWithContext[T any](ctx context.Context, call CallContext, method, resourcePath, payload string) (T, error) {
	res, err := Execute[T](ctx, DefaultClient(), call, method, resourcePath, payload)
	if err != nil {
		var zero T
		return zero, err
	}
	return res.Data, nil
}

// WithDiagnostics returns ctx with a diagnostics recorder attached, keeping
// one that is already there.
func WithDiagnostics(ctx context.Context) context.Context {
	if diagnostics.FromContext(ctx) != nil {
		return ctx
	}
	return diagnostics.NewContext(ctx, diagnostics.NewRecorder())
}

// LastRequest returns the last payload sent with ctx's recorder.
// ok is false when ctx has no recorder or it has recorded nothing.
func LastRequest(ctx context.Context) (string, bool) {
	return diagnostics.FromContext(ctx).LastRequest()
}

// LastResponse returns the last response body received with ctx's recorder.
func LastResponse(ctx context.Context) (string, bool) {
	return diagnostics.FromContext(ctx).LastResponse()
}
