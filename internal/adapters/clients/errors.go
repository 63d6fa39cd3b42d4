// Package clients provides the instrumented HTTP client used by provider adapters.
package clients

import "errors"

// Transport-level failures. Adapters in the acl package translate these to
// domain.ErrUnavailable so the pipeline can fall back.
var (
	// ErrCircuitOpen means the provider has been failing and is not being called.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrRequestFailed wraps the last error after every attempt failed.
	ErrRequestFailed = errors.New("downstream request failed")
)
