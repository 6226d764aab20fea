package revocation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	apperrors "student-auth-service/pkg/errors"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, 2*time.Second), mr
}

func TestRedisStore_RevokeThenIsRevoked(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "some.token.value")
	if err != nil {
		t.Fatalf("IsRevoked error: %v", err)
	}
	if revoked {
		t.Fatal("token should not be revoked before Revoke")
	}

	if err := store.Revoke(ctx, "some.token.value", "alice", 10*time.Minute); err != nil {
		t.Fatalf("Revoke error: %v", err)
	}

	revoked, err = store.IsRevoked(ctx, "some.token.value")
	if err != nil {
		t.Fatalf("IsRevoked error: %v", err)
	}
	if !revoked {
		t.Fatal("token should be revoked after Revoke")
	}

	// Record is keyed by the full token and carries the remaining lifetime.
	if got := mr.TTL(KeyPrefix + "some.token.value"); got != 10*time.Minute {
		t.Fatalf("record TTL = %v, want %v", got, 10*time.Minute)
	}
	got, err := mr.Get(KeyPrefix + "some.token.value")
	if err != nil {
		t.Fatalf("record missing: %v", err)
	}
	if got != "alice" {
		t.Fatalf("record value = %q, want %q", got, "alice")
	}
}

func TestRedisStore_RecordExpiresWithTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Revoke(ctx, "short.lived", "bob", time.Minute); err != nil {
		t.Fatalf("Revoke error: %v", err)
	}

	mr.FastForward(time.Minute + time.Second)

	revoked, err := store.IsRevoked(ctx, "short.lived")
	if err != nil {
		t.Fatalf("IsRevoked error: %v", err)
	}
	if revoked {
		t.Fatal("record should have expired with its TTL")
	}
}

func TestRedisStore_RevokeIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Revoke(ctx, "tok", "alice", 5*time.Minute); err != nil {
		t.Fatalf("first Revoke error: %v", err)
	}
	if err := store.Revoke(ctx, "tok", "alice", 5*time.Minute); err != nil {
		t.Fatalf("second Revoke error: %v", err)
	}

	revoked, err := store.IsRevoked(ctx, "tok")
	if err != nil {
		t.Fatalf("IsRevoked error: %v", err)
	}
	if !revoked {
		t.Fatal("token should remain revoked")
	}
}

func TestRedisStore_ConcurrentReadersSeeFreshRevocation(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Revoke(ctx, "contested", "carol", 10*time.Minute); err != nil {
		t.Fatalf("Revoke error: %v", err)
	}

	const readers = 2
	results := make([]bool, readers)
	errs := make([]error, readers)

	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = store.IsRevoked(ctx, "contested")
		}(i)
	}
	wg.Wait()

	for i := 0; i < readers; i++ {
		if errs[i] != nil {
			t.Fatalf("reader %d error: %v", i, errs[i])
		}
		if !results[i] {
			t.Fatalf("reader %d did not observe the revocation", i)
		}
	}
}

func TestRedisStore_TransportFailureIsStoreUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	store := NewRedisStore(client, time.Second)

	mr.Close()

	_, err := store.IsRevoked(context.Background(), "any")
	if err == nil {
		t.Fatal("expected error when store is unreachable")
	}
	if !errors.Is(err, apperrors.ErrStoreUnavailable) {
		t.Fatalf("error should wrap ErrStoreUnavailable, got: %v", err)
	}

	if err := store.Revoke(context.Background(), "any", "dave", time.Minute); err == nil {
		t.Fatal("expected error when store is unreachable")
	}
}
