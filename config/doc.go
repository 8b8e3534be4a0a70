// Package config holds the process-wide REST SDK configuration.
//
// A Store is loaded from a Java-properties stream, a properties file or an
// in-memory key/value table. Until one of those happens, the first call that
// needs configuration loads the default source exactly once: the first
// sdk_config.properties found in the standard locations, or the copy bundled
// with the SDK.
//
// Keys are case-insensitive. Every load layers its values under dotenv and
// process environment overrides named RESTSDK_<KEY>, dots as underscores:
//
//	service.EndPoint=https://api.example.com/v1/   # file
//	RESTSDK_SERVICE_ENDPOINT=http://localhost:8080/ # wins
//
// A loaded Configuration is immutable. A failed load is logged and leaves the
// previous Configuration in effect.
package config
