package shortener

import (
	"context"
	"time"
)

// MappingStore is the TTL-bounded key-value access the Service needs, split
// into two logical namespaces: forward (code -> long URL) and reverse
// (long URL -> code). Implementations keep the namespaces disjoint even when
// a code and a URL are textually identical.
//
// A missing value is (_, false, nil): absence is an expected outcome, not an
// error. A non-nil error means the backend itself failed and wraps
// ErrStoreUnavailable.
type MappingStore interface {
	// PutForward writes code -> url with the given TTL, unconditionally
	// overwriting any existing value for code.
	PutForward(ctx context.Context, code, url string, ttl time.Duration) error

	// GetForward returns the long URL behind code, or ok=false when the
	// code is unknown or expired.
	GetForward(ctx context.Context, code string) (url string, ok bool, err error)

	// PutReverse writes url -> code with the given TTL, unconditionally
	// overwriting any existing value for url.
	PutReverse(ctx context.Context, url, code string, ttl time.Duration) error

	// GetReverse returns the code already assigned to url, or ok=false.
	GetReverse(ctx context.Context, url string) (code string, ok bool, err error)

	// ExistsForward reports whether code is taken in the forward namespace.
	// It is an existence probe, not a value fetch.
	ExistsForward(ctx context.Context, code string) (bool, error)
}
