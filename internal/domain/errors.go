package domain

import "errors"

// Sentinel errors returned by the domain and use case layers.
// Callers should match them with errors.Is, as they are usually wrapped with context.
var (
	// ErrInvalidRequest indicates the search input is malformed (bad codes, dates or miles).
	ErrInvalidRequest = errors.New("invalid request")

	// ErrIncompleteSearch indicates a required search field is missing.
	// The results view treats it as the empty placeholder state, not as a failure.
	ErrIncompleteSearch = errors.New("incomplete search")

	// ErrInvalidFeedback indicates a feedback submission failed validation.
	ErrInvalidFeedback = errors.New("invalid feedback")
)
