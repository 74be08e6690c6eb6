// ABOUTME: Domain-level sentinel errors for the news ingestion pipeline
// ABOUTME: These errors are used with errors.Is() for error type checking
package domain

import "errors"

// Feed fetch errors
var (
	// ErrFeedTimeout indicates the watchdog timer fired before the
	// transport completed. Distinct from caller cancellation.
	ErrFeedTimeout = errors.New("feed fetch timed out")

	// ErrFeedUnavailable indicates the feed responded with a
	// non-success HTTP status.
	ErrFeedUnavailable = errors.New("feed returned non-success status")
)

// Ingestion errors
var (
	// ErrRunInProgress indicates another ingestion run currently holds
	// the single-flight gate.
	ErrRunInProgress = errors.New("ingestion run already in progress")
)
