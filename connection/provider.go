package connection

import (
	"context"
	"fmt"
	"net/http"
	"sync"
)

// Connection sends one request and returns the raw response body.
// A non-2xx response returns the body together with an *Error.
type Connection interface {
	Send(ctx context.Context, method, url string, body []byte, headers http.Header) ([]byte, error)
}

// Provider supplies Connections for a parameter set. Implementations must be
// safe for concurrent use.
type Provider interface {
	Obtain(params Params) (Connection, error)
	Configure(conn Connection, params Params) error
}

// HTTPProvider pools the HTTPConnection for the most recently obtained Params.
// Obtaining a different parameter set (after a configuration reload, say)
// evicts the older connections and closes their idle sockets; callers still
// holding one can keep using it.
type HTTPProvider struct {
	mu    sync.Mutex
	conns map[Params]*HTTPConnection
}

// NewHTTPProvider creates an empty HTTPProvider.
func NewHTTPProvider() *HTTPProvider {
	return &HTTPProvider{conns: make(map[Params]*HTTPConnection)}
}

// Obtain returns a configured connection for params.
func (p *HTTPProvider) Obtain(params Params) (Connection, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.conns[params]; ok {
		return c, nil
	}

	c := &HTTPConnection{}
	if err := c.configure(params); err != nil {
		return nil, err
	}
	for stale, old := range p.conns {
		old.CloseIdleConnections()
		delete(p.conns, stale)
	}
	p.conns[params] = c
	return c, nil
}

// Configure (re)shapes conn for params. It is a no-op when conn already
// matches params.
func (p *HTTPProvider) Configure(conn Connection, params Params) error {
	c, ok := conn.(*HTTPConnection)
	if !ok {
		return fmt.Errorf("connection: cannot configure %T", conn)
	}
	return c.configure(params)
}

// Len returns the number of pooled connections.
func (p *HTTPProvider) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.conns)
}

// Close closes idle connections and empties the pool.
func (p *HTTPProvider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range p.conns {
		c.CloseIdleConnections()
	}
	p.conns = make(map[Params]*HTTPConnection)
}
