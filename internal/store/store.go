// Package store provides MappingStore implementations over backends that can
// expire keys: Redis (primary), Postgres (expires_at column plus a sweeper),
// and an in-process map used by tests and local development.
package store

import (
	"fmt"

	"github.com/serroba/templink/internal/shortener"
)

// Key prefixes keep the forward and reverse namespaces disjoint inside one
// flat keyspace. The backend is unaware of the convention; it only ever sees
// prefixed string keys.
const (
	forwardPrefix = "url:"
	reversePrefix = "reverse:"
)

// storeErr marks a backend failure so callers can branch on
// shortener.ErrStoreUnavailable while keeping the cause in the chain.
func storeErr(err error) error {
	return fmt.Errorf("%w: %w", shortener.ErrStoreUnavailable, err)
}
