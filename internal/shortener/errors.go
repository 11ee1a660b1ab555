package shortener

import "errors"

// Sentinel errors returned by the Service and by MappingStore
// implementations. Callers branch with errors.Is.
var (
	// ErrInvalidInput marks an empty or oversized long URL.
	ErrInvalidInput = errors.New("invalid long url")

	// ErrNotFound means a code has no live forward record. It covers both
	// "never issued" and "expired"; the store cannot tell them apart.
	ErrNotFound = errors.New("short url not found")

	// ErrStoreUnavailable wraps backend connectivity and timeout failures.
	// The service does not retry these; retry policy belongs to callers.
	ErrStoreUnavailable = errors.New("mapping store unavailable")

	// ErrCodeGenerationExhausted means every candidate code in the retry
	// budget collided with a live mapping.
	ErrCodeGenerationExhausted = errors.New("failed to generate unique short code")
)
