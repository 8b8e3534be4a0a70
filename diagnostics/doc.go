// Package diagnostics captures the raw payload sent and the raw body received
// by REST calls.
//
// A Recorder belongs to one caller. Attach it to the context passed to a call
// and read it back afterwards; callers with different recorders never observe
// each other's traffic, and a context without a recorder observes nothing.
//
//	rec := diagnostics.NewRecorder()
//	ctx = diagnostics.NewContext(ctx, rec)
//	_, err := restsdk.Execute[Payment](ctx, client, call, http.MethodGet, "payments/123", "")
//	body, ok := rec.LastResponse()
package diagnostics
