package auth

import (
	"crypto/rand"
	"fmt"
)

// signingKeySize is 256 bits, matching the HS256 signing method.
const signingKeySize = 32

// NewSigningKey generates the process-wide token signing key. The key lives
// only in memory and is never persisted: tokens issued before a restart
// become unverifiable afterward, which is the accepted revocation-on-restart
// behavior.
func NewSigningKey() ([]byte, error) {
	key := make([]byte, signingKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate signing key: %w", err)
	}
	return key, nil
}
