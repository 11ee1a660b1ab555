package shortener

import (
	"context"
	"fmt"
	"time"
)

// Defaults applied by NewService for zero Config fields.
const (
	DefaultTTL          = 600 * time.Second
	DefaultCodeBytes    = 8
	DefaultMaxAttempts  = 10
	DefaultMaxURLLength = 2048
)

// Config carries the tunables of a Service. Zero values fall back to the
// package defaults above.
type Config struct {
	// TTL is the lifetime of a mapping. Forward and reverse records are
	// written with the same value and age out together.
	TTL time.Duration

	// MaxAttempts bounds the collision retry loop of Shorten.
	MaxAttempts int

	// MaxURLLength is the longest accepted long URL, in bytes.
	MaxURLLength int
}

// Service turns long URLs into short codes and back. It holds no per-request
// state and takes no locks; all coordination between concurrent requests is
// delegated to the MappingStore.
type Service struct {
	store        MappingStore
	generateCode CodeGenerator
	ttl          time.Duration
	maxAttempts  int
	maxURLLength int
}

// NewService creates a Service over the given store and code generator.
func NewService(store MappingStore, generator CodeGenerator, cfg Config) *Service {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}

	if cfg.MaxURLLength <= 0 {
		cfg.MaxURLLength = DefaultMaxURLLength
	}

	return &Service{
		store:        store,
		generateCode: generator,
		ttl:          cfg.TTL,
		maxAttempts:  cfg.MaxAttempts,
		maxURLLength: cfg.MaxURLLength,
	}
}

// Shorten returns the short code for longURL, minting a fresh one on first
// sight and returning the existing code while a live reverse record exists.
// A repeated call writes nothing and does not refresh the mapping's TTL.
func (s *Service) Shorten(ctx context.Context, longURL string) (string, error) {
	if longURL == "" {
		return "", fmt.Errorf("%w: empty url", ErrInvalidInput)
	}

	if len(longURL) > s.maxURLLength {
		return "", fmt.Errorf("%w: url longer than %d bytes", ErrInvalidInput, s.maxURLLength)
	}

	// Two concurrent calls for the same new URL can both miss this lookup
	// and mint distinct codes; the later reverse write wins and the loser's
	// forward record stays resolvable until its TTL passes.
	code, ok, err := s.store.GetReverse(ctx, longURL)
	if err != nil {
		return "", err
	}

	if ok {
		return code, nil
	}

	code, err = s.mint(ctx)
	if err != nil {
		return "", err
	}

	// The pair below is two separate store calls, not one transaction. A
	// failure or crash between them leaves a forward record that resolves
	// but is invisible to duplicate suppression until it ages out.
	if err := s.store.PutForward(ctx, code, longURL, s.ttl); err != nil {
		return "", err
	}

	if err := s.store.PutReverse(ctx, longURL, code, s.ttl); err != nil {
		return "", err
	}

	return code, nil
}

// Resolve returns the long URL behind code, unchanged. ErrNotFound covers
// both a code that was never issued and one whose TTL has passed.
func (s *Service) Resolve(ctx context.Context, code string) (string, error) {
	url, ok, err := s.store.GetForward(ctx, code)
	if err != nil {
		return "", err
	}

	if !ok {
		return "", ErrNotFound
	}

	return url, nil
}

// mint generates candidate codes until one is free in the forward namespace,
// giving up after maxAttempts collisions.
func (s *Service) mint(ctx context.Context) (string, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		candidate := s.generateCode()

		taken, err := s.store.ExistsForward(ctx, candidate)
		if err != nil {
			return "", err
		}

		if !taken {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w after %d attempts", ErrCodeGenerationExhausted, s.maxAttempts)
}
