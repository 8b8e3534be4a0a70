package diagnostics

import (
	"context"
	"sync/atomic"
)

// Kind selects a diagnostics slot.
type Kind int

const (
	// Request is the raw outbound payload.
	Request Kind = iota
	// Response is the raw inbound response body.
	Response
)

// String returns the slot name.
func (k Kind) String() string {
	switch k {
	case Request:
		return "request"
	case Response:
		return "response"
	default:
		return "unknown"
	}
}

// Recorder keeps the most recent request and response recorded by its owner.
// Values are overwritten on every record and never cleared. The zero value is
// ready to use, and a nil *Recorder records nothing and reports absent.
type Recorder struct {
	request  atomic.Pointer[string]
	response atomic.Pointer[string]
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) slot(kind Kind) *atomic.Pointer[string] {
	switch kind {
	case Request:
		return &r.request
	case Response:
		return &r.response
	default:
		return nil
	}
}

// Record stores value in the slot for kind.
func (r *Recorder) Record(kind Kind, value string) {
	if r == nil {
		return
	}
	if s := r.slot(kind); s != nil {
		s.Store(&value)
	}
}

// Get returns the most recent value for kind; ok is false when nothing has
// been recorded yet.
func (r *Recorder) Get(kind Kind) (value string, ok bool) {
	if r == nil {
		return "", false
	}
	s := r.slot(kind)
	if s == nil {
		return "", false
	}
	if p := s.Load(); p != nil {
		return *p, true
	}
	return "", false
}

// LastRequest returns the last recorded outbound payload.
func (r *Recorder) LastRequest() (string, bool) { return r.Get(Request) }

// LastResponse returns the last recorded response body.
func (r *Recorder) LastResponse() (string, bool) { return r.Get(Response) }

// Snapshot copies the recorder's current state.
func (r *Recorder) Snapshot() Snapshot {
	var s Snapshot
	s.Request, s.HasRequest = r.Get(Request)
	s.Response, s.HasResponse = r.Get(Response)
	return s
}

// Snapshot is an immutable copy of one recorder's state, returned with every call.
type Snapshot struct {
	Request     string
	Response    string
	HasRequest  bool
	HasResponse bool
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying r.
func NewContext(ctx context.Context, r *Recorder) context.Context {
	return context.WithValue(ctx, contextKey{}, r)
}

// FromContext returns the recorder carried by ctx, or nil.
func FromContext(ctx context.Context) *Recorder {
	r, _ := ctx.Value(contextKey{}).(*Recorder)
	return r
}
