package diagnostics

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestRecorder_Empty(t *testing.T) {
	r := NewRecorder()
	if _, ok := r.LastRequest(); ok {
		t.Error("expected absent request")
	}
	if _, ok := r.LastResponse(); ok {
		t.Error("expected absent response")
	}
}

func TestRecorder_RecordAndOverwrite(t *testing.T) {
	r := NewRecorder()
	r.Record(Request, `{"a":1}`)
	r.Record(Response, `{"id":"1"}`)
	r.Record(Request, `{"a":2}`)

	if v, ok := r.LastRequest(); !ok || v != `{"a":2}` {
		t.Errorf("expected latest request, got %q (ok=%v)", v, ok)
	}
	if v, ok := r.LastResponse(); !ok || v != `{"id":"1"}` {
		t.Errorf("expected response kept, got %q (ok=%v)", v, ok)
	}
}

func TestRecorder_EmptyStringIsPresent(t *testing.T) {
	r := NewRecorder()
	r.Record(Request, "")
	if v, ok := r.LastRequest(); !ok || v != "" {
		t.Errorf("expected recorded empty payload, got %q (ok=%v)", v, ok)
	}
}

func TestRecorder_NilSafe(t *testing.T) {
	var r *Recorder
	r.Record(Request, "x")
	if _, ok := r.Get(Request); ok {
		t.Error("nil recorder should report absent")
	}
	if s := r.Snapshot(); s.HasRequest || s.HasResponse {
		t.Errorf("unexpected snapshot %+v", s)
	}
}

func TestRecorder_UnknownKind(t *testing.T) {
	r := NewRecorder()
	r.Record(Kind(7), "x")
	if _, ok := r.Get(Kind(7)); ok {
		t.Error("unknown kind should report absent")
	}
	if Kind(7).String() != "unknown" || Request.String() != "request" || Response.String() != "response" {
		t.Error("unexpected kind names")
	}
}

func TestSnapshot(t *testing.T) {
	r := NewRecorder()
	r.Record(Request, "req")
	s := r.Snapshot()
	r.Record(Request, "changed")

	if !s.HasRequest || s.Request != "req" {
		t.Errorf("snapshot should not follow later records: %+v", s)
	}
	if s.HasResponse {
		t.Error("expected no response in snapshot")
	}
}

func TestContext(t *testing.T) {
	if FromContext(context.Background()) != nil {
		t.Error("expected nil recorder for bare context")
	}
	r := NewRecorder()
	ctx := NewContext(context.Background(), r)
	if FromContext(ctx) != r {
		t.Error("expected recorder from context")
	}
}

func TestRecorders_AreIndependent(t *testing.T) {
	var wg sync.WaitGroup
	recs := make([]*Recorder, 8)
	for i := range recs {
		recs[i] = NewRecorder()
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				recs[i].Record(Request, fmt.Sprintf("r%d-%d", i, j))
			}
		}(i)
	}
	wg.Wait()

	for i, r := range recs {
		want := fmt.Sprintf("r%d-99", i)
		if v, _ := r.LastRequest(); v != want {
			t.Errorf("recorder %d: expected %q, got %q", i, want, v)
		}
	}
}
