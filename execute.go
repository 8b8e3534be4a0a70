package restsdk

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/restsdk/connection"
	"github.com/kbukum/restsdk/diagnostics"
	"github.com/kbukum/restsdk/errors"
	"github.com/kbukum/restsdk/logger"
	"github.com/kbukum/restsdk/observability"
	"github.com/kbukum/restsdk/request"
)

// Result is the outcome of a successful call, and the diagnostics of a failed one.
type Result[T any] struct {
	// Data is the decoded response body.
	Data T
	// Diagnostics holds the payload sent and the body received by this call.
	Diagnostics diagnostics.Snapshot
	// RequestID is the request id sent, if any.
	RequestID string
}

// Execute sends one call and decodes the response body into T. payload is
// the raw JSON request body; an empty payload sends no body.
//
// The returned Result carries this call's diagnostics even when err is
// non-nil. err is always an *errors.CallError.
func Execute[T any](ctx context.Context, c *Client, call CallContext, method, resourcePath, payload string) (Result[T], error) {
	res := Result[T]{RequestID: call.RequestID}
	snap, err := c.Do(ctx, call, method, resourcePath, payload, &res.Data)
	res.Diagnostics = snap
	return res, err
}

// Do sends one call and decodes the response body into out, a pointer.
// A nil out skips decoding.
func (c *Client) Do(ctx context.Context, call CallContext, method, resourcePath, payload string, out any) (diagnostics.Snapshot, error) {
	rec := &callRecorder{local: diagnostics.NewRecorder(), caller: diagnostics.FromContext(ctx)}
	method = strings.ToUpper(strings.TrimSpace(method))

	start := time.Now()
	ctx, span := observability.StartCallSpan(ctx, c.tracer, method, resourcePath)
	c.metrics.RecordStart(ctx)

	status, err := c.execute(ctx, call, method, resourcePath, payload, out, rec)

	outcome := "ok"
	if ce, ok := errors.AsCallError(err); ok {
		outcome = string(ce.Code)
	}
	elapsed := time.Since(start)
	observability.EndCallSpan(span, status, outcome, err)
	c.metrics.RecordEnd(ctx, method, outcome, elapsed)
	log := c.logger()
	if err != nil {
		log = log.WithError(err)
	}
	fields := logger.DurationFields(resourcePath, elapsed)
	fields[logger.FieldMethod] = method
	fields[logger.FieldRequestID] = call.RequestID
	fields[logger.FieldStatus] = outcome
	log.Debug("call finished", fields)

	return rec.local.Snapshot(), err
}

func (c *Client) execute(ctx context.Context, call CallContext, method, resourcePath, payload string, out any, rec *callRecorder) (int, error) {
	if err := c.store.EnsureInitialized(); err != nil {
		return 0, errors.Wrap(errors.ErrCodeConfigLoad, err)
	}

	desc := request.Build(c.store.Current(), method, resourcePath, call.AccessToken, call.RequestID)
	if err := desc.Validate(); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidConfig, err)
	}
	target, err := desc.URL()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidURL, err)
	}
	observability.SetSpanAttributes(ctx,
		attribute.String(observability.AttrURL, target),
		attribute.String(observability.AttrRequestID, call.RequestID),
	)

	conn, err := c.provider.Obtain(desc.Params)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeConnection, err)
	}
	if err := c.provider.Configure(conn, desc.Params); err != nil {
		return 0, errors.Wrap(errors.ErrCodeConnection, err)
	}

	rec.Record(diagnostics.Request, payload)
	c.logger().Debug("dispatching call", logger.Fields(
		logger.FieldMethod, desc.Method,
		logger.FieldURL, target,
		logger.FieldRequestID, desc.RequestID(),
	))

	body, err := conn.Send(ctx, desc.Method, target, requestBody(payload), desc.Headers)
	if err == nil || body != nil {
		rec.Record(diagnostics.Response, string(body))
	}
	if err != nil {
		return connection.StatusCode(err), sendError(err)
	}

	if out != nil {
		if err := c.codec.Decode(body, out); err != nil {
			return 0, errors.Wrap(errors.ErrCodeDecode, err)
		}
	}
	return 0, nil
}

// sendError maps a Connection.Send failure to its CallError.
func sendError(err error) *errors.CallError {
	if ce, ok := errors.AsCallError(err); ok {
		return ce
	}
	switch {
	case connection.IsTimeout(err):
		return errors.Wrap(errors.ErrCodeTimeout, err)
	case connection.IsStatus(err):
		ce := errors.Wrap(errors.ErrCodeHTTPStatus, err).
			WithDetail("status", connection.StatusCode(err))
		ce.Retryable = connection.IsRetryable(err)
		var se *connection.Error
		if stderrors.As(err, &se) {
			if se.Name != "" {
				ce.WithDetail("name", se.Name)
			}
			if se.DebugID != "" {
				ce.WithDetail("debug_id", se.DebugID)
			}
		}
		return ce
	default:
		return errors.Wrap(errors.ErrCodeConnection, err)
	}
}

func requestBody(payload string) []byte {
	if payload == "" {
		return nil
	}
	return []byte(payload)
}

// callRecorder writes to the call's own recorder and to the caller's, if any.
type callRecorder struct {
	local  *diagnostics.Recorder
	caller *diagnostics.Recorder
}

func (r *callRecorder) Record(kind diagnostics.Kind, value string) {
	r.local.Record(kind, value)
	r.caller.Record(kind, value)
}
