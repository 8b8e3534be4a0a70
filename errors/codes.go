package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors
const (
	// ErrCodeConfigLoad indicates a configuration source could not be read or parsed.
	ErrCodeConfigLoad ErrorCode = "CONFIG_LOAD"
	// ErrCodeInvalidConfig indicates the active configuration cannot drive a call.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeInvalidURL indicates the request URL could not be resolved.
	ErrCodeInvalidURL ErrorCode = "INVALID_URL"
)

// Transport errors
const (
	// ErrCodeConnection indicates connection acquisition or a network send failed.
	ErrCodeConnection ErrorCode = "CONNECTION"
	// ErrCodeTimeout indicates the send timed out or its context ended.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeHTTPStatus indicates the service answered with a non-2xx status.
	ErrCodeHTTPStatus ErrorCode = "HTTP_STATUS"
)

// Response errors
const (
	// ErrCodeDecode indicates the response body was not compatible JSON.
	ErrCodeDecode ErrorCode = "DECODE"
)

// Retryable only informs the caller; nothing at this layer retries.
var retryableCodes = map[ErrorCode]bool{
	ErrCodeConnection: true,
	ErrCodeTimeout:    true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
