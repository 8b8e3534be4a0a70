package restsdk

import (
	"sync"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/restsdk/codec"
	"github.com/kbukum/restsdk/config"
	"github.com/kbukum/restsdk/connection"
	"github.com/kbukum/restsdk/logger"
	"github.com/kbukum/restsdk/observability"
)

// Client executes REST calls against the endpoint held by its store.
// It is safe for concurrent use.
type Client struct {
	store    *config.Store
	provider connection.Provider
	codec    codec.Codec
	log      *logger.Logger
	metrics  *observability.CallMetrics
	tracer   trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithStore sets the configuration store. Defaults to config.Default().
func WithStore(s *config.Store) Option {
	return func(c *Client) { c.store = s }
}

// WithProvider sets the connection provider. Defaults to a provider shared
// by all clients built without one.
func WithProvider(p connection.Provider) Option {
	return func(c *Client) { c.provider = p }
}

// WithCodec sets the response codec. Defaults to codec.JSON.
func WithCodec(cd codec.Codec) Option {
	return func(c *Client) { c.codec = cd }
}

// WithLogger sets the logger. Defaults to the "restsdk" component logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithMetrics records every call on m.
func WithMetrics(m *observability.CallMetrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithTracerProvider traces calls with tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) { c.tracer = observability.Tracer(tp) }
}

var sharedProvider = sync.OnceValue(func() *connection.HTTPProvider {
	return connection.NewHTTPProvider()
})

// New creates a Client. Unset collaborators get their defaults.
func New(opts ...Option) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}
	if c.store == nil {
		c.store = config.Default()
	}
	if c.provider == nil {
		c.provider = sharedProvider()
	}
	if c.codec == nil {
		c.codec = codec.JSON{}
	}
	if c.tracer == nil {
		c.tracer = observability.Tracer(nil)
	}
	return c
}

// Store returns the client's configuration store.
func (c *Client) Store() *config.Store {
	return c.store
}

func (c *Client) logger() *logger.Logger {
	if c.log != nil {
		return c.log
	}
	return logger.Get("restsdk")
}
