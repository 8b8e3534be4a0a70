// Package connection supplies the HTTP transport a REST call is sent over.
//
// A Provider hands out Connections shaped by a Params set derived from the
// loaded configuration: timeouts, pool size, proxy, TLS and HTTP/2. The
// HTTPProvider keeps the connection for the latest Params value and drops
// older ones; callers must not rely on that sharing.
//
// Connection failures and non-2xx responses are returned as *Error, which
// classifies the failure and, for status errors, keeps the response body and
// the API error fields found in it.
package connection
