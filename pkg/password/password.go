package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the bcrypt cost used for all credential hashes (12)
	DefaultCost = 12

	errPasswordEmpty   = "password cannot be empty"
	errHashPasswordFmt = "failed to hash password: %w"
)

// DummyHash is a pre-computed bcrypt hash (cost 12) used to equalize timing
// on failed credential lookups. The plaintext it encodes is irrelevant.
const DummyHash = "$2a$12$dWR5CQpS4zNHLavLSIr4o.P6QDQEUJKv7mJ7WekUHHqyRSRMJzH0S"

// Hash generates a bcrypt hash of the password
func Hash(password string) (string, error) {
	if len(password) == 0 {
		return "", fmt.Errorf(errPasswordEmpty)
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf(errHashPasswordFmt, err)
	}

	return string(bytes), nil
}

// Verify checks if the password matches the hash
func Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
