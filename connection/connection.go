package connection

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/net/http2"
)

// HTTPConnection is a Connection backed by an *http.Client.
type HTTPConnection struct {
	mu     sync.RWMutex
	client *http.Client
	params Params
}

// Params returns the parameters the connection is shaped by.
func (c *HTTPConnection) Params() Params {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.params
}

// Send executes a request and returns the complete response body.
func (c *HTTPConnection) Send(ctx context.Context, method, target string, body []byte, headers http.Header) ([]byte, error) {
	c.mu.RLock()
	client := c.client
	c.mu.RUnlock()
	if client == nil {
		return nil, NewConnectionError(errors.New("connection is not configured"))
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, NewRequestError(err)
	}
	if headers != nil {
		req.Header = headers.Clone()
	}

	resp, err := client.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	if classErr := ClassifyStatusCode(resp.StatusCode, data); classErr != nil {
		return data, classErr
	}
	return data, nil
}

// CloseIdleConnections closes idle keep-alive connections.
func (c *HTTPConnection) CloseIdleConnections() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.client != nil {
		c.client.CloseIdleConnections()
	}
}

func (c *HTTPConnection) configure(params Params) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil && c.params == params {
		return nil
	}

	transport, err := newTransport(params)
	if err != nil {
		return err
	}
	if c.client != nil {
		c.client.CloseIdleConnections()
	}
	c.client = &http.Client{Transport: transport}
	c.params = params
	return nil
}

func newTransport(p Params) (*http.Transport, error) {
	dialer := &net.Dialer{
		Timeout:   p.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: p.ReadTimeout,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   p.MaxConnections,
		MaxConnsPerHost:       p.MaxConnections,
		IdleConnTimeout:       90 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	if p.Proxy.Enabled {
		transport.Proxy = http.ProxyURL(proxyURL(p.Proxy))
	}

	tlsCfg, err := p.TLS.Build()
	if err != nil {
		return nil, err
	}
	transport.TLSClientConfig = tlsCfg

	if p.HTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			return nil, fmt.Errorf("connection: enable http2: %w", err)
		}
	} else {
		transport.TLSNextProto = map[string]func(string, *tls.Conn) http.RoundTripper{}
	}
	return transport, nil
}

func proxyURL(p ProxyConfig) *url.URL {
	host := p.Host
	if p.Port > 0 {
		host = net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
	}
	u := &url.URL{Scheme: "http", Host: host}
	if p.Username != "" {
		u.User = url.UserPassword(p.Username, p.Password)
	}
	return u
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
