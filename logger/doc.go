// Package logger provides structured logging for the REST SDK using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	RESTSDK_LOG_LEVEL=debug RESTSDK_LOG_FORMAT=json
//
// # Usage
//
//	log := logger.Get("connection")
//	log.Debug("dispatch", logger.Fields("method", "GET", "url", u))
//
//	logger.Severe("config", "failed to load configuration", err)
package logger
