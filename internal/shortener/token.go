package shortener

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// CodeGenerator produces one candidate short code per call. Candidates must
// be drawn from an unpredictable source: guessable codes would let anyone
// enumerate other users' mappings.
type CodeGenerator func() string

// NewTokenGenerator returns a CodeGenerator that encodes numBytes of
// crypto/rand output as unpadded base64url, so every code is URL-safe and of
// fixed length (8 bytes yield 11 characters).
func NewTokenGenerator(numBytes int) (CodeGenerator, error) {
	if numBytes < 1 {
		return nil, fmt.Errorf("token generator: byte length must be positive, got %d", numBytes)
	}

	return func() string {
		b := make([]byte, numBytes)
		_, _ = rand.Read(b) // never fails, per crypto/rand docs

		return base64.RawURLEncoding.EncodeToString(b)
	}, nil
}
