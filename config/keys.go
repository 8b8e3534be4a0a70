package config

import "strings"

// Recognised configuration keys, stored lower-cased.
const (
	KeyEndpoint          = "service.endpoint"
	KeyConnectionTimeout = "http.connectiontimeout"
	KeyReadTimeout       = "http.readtimeout"
	KeyMaxConnection     = "http.maxconnection"
	KeyUseProxy          = "http.useproxy"
	KeyProxyHost         = "http.proxyhost"
	KeyProxyPort         = "http.proxyport"
	KeyProxyUsername     = "http.proxyusername"
	KeyProxyPassword     = "http.proxypassword"
	KeyHTTP2             = "http.http2"
	KeyTLSSkipVerify     = "http.tls.skipverify"
	KeyTLSCAFile         = "http.tls.cafile"
	KeyTLSCertFile       = "http.tls.certfile"
	KeyTLSKeyFile        = "http.tls.keyfile"
	KeyTLSServerName     = "http.tls.servername"
	KeyRequestIDHeader   = "http.requestidheader"
)

// KnownKeys lists every key the SDK reads. Environment overrides are looked up
// for these keys and for every key present in the loaded source.
var KnownKeys = []string{
	KeyEndpoint,
	KeyConnectionTimeout,
	KeyReadTimeout,
	KeyMaxConnection,
	KeyUseProxy,
	KeyProxyHost,
	KeyProxyPort,
	KeyProxyUsername,
	KeyProxyPassword,
	KeyHTTP2,
	KeyTLSSkipVerify,
	KeyTLSCAFile,
	KeyTLSCertFile,
	KeyTLSKeyFile,
	KeyTLSServerName,
	KeyRequestIDHeader,
}

// EnvPrefix prefixes environment variable overrides.
const EnvPrefix = "RESTSDK"

// EnvName returns the environment variable that overrides key:
// service.endpoint -> RESTSDK_SERVICE_ENDPOINT.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(normalizeKey(key), ".", "_"))
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
