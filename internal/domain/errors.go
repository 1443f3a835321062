package domain

import "errors"

// Only ErrInvalidInput, ErrUnreadableDocument and ErrUnsupportedFormat may
// cross the API boundary. Source-level failures are absorbed by the
// adapters' fallback policy and never surface to callers.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnreadableDocument = errors.New("unreadable document")
	ErrUnsupportedFormat  = errors.New("unsupported format")

	ErrSourceUnavailable = errors.New("source unavailable")
	ErrParseFailure      = errors.New("parse failure")
)
