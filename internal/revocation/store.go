package revocation

import (
	"context"
	"time"
)

// Record keys are the full token string under this prefix; the value is the
// token's subject. A record's TTL equals the token's remaining lifetime at
// revocation time, so the store is self-cleaning: no record outlives the
// token it marks.
const KeyPrefix = "blacklisted:"

// Store is the minimal revocation interface the auth pipeline consumes.
// Only a blind existence check and a blind set-with-TTL are required; the
// store's single-key atomicity makes client-side locking unnecessary.
type Store interface {
	// IsRevoked reports whether a revocation record exists for the token.
	// A transport failure is returned as an error; callers on the request
	// path must treat it as revoked (fail-closed), never as clean.
	IsRevoked(ctx context.Context, token string) (bool, error)

	// Revoke writes a revocation record for the token with the given TTL.
	// Overwriting an existing record is a no-op in effect, which makes
	// repeated logout of the same token idempotent.
	Revoke(ctx context.Context, token, subject string, ttl time.Duration) error
}
