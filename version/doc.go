// Package version identifies the SDK build. The identity feeds the
// User-Agent header sent with every REST call.
//
// Version and git commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/restsdk/version.Version=1.0.0"
package version
