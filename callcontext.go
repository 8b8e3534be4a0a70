package restsdk

import "github.com/google/uuid"

// CallContext is the caller identity of one call.
type CallContext struct {
	// AccessToken is required. A bare token is sent as "Bearer <token>".
	AccessToken string
	// RequestID is optional and sent in the request id header when set.
	RequestID string
}

// NewCallContext returns a CallContext for token without a request id.
func NewCallContext(token string) CallContext {
	return CallContext{AccessToken: token}
}

// WithRequestID returns a copy carrying id.
func (cc CallContext) WithRequestID(id string) CallContext {
	cc.RequestID = id
	return cc
}

// WithGeneratedRequestID returns a copy carrying a fresh request id.
func (cc CallContext) WithGeneratedRequestID() CallContext {
	return cc.WithRequestID(GenerateRequestID())
}

// GenerateRequestID returns a random UUID v4 request id.
func GenerateRequestID() string {
	return uuid.NewString()
}
