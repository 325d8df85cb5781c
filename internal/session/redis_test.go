package session

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/ahmadalarjah/crypto-admin/internal/domain"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStoreWithClient(client, "ADMIN"), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t)

	want := adminSession()
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestRedisStoreEmpty(t *testing.T) {
	store, _ := newRedisStore(t)
	_, err := store.Load(context.Background())
	if !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestRedisStoreDiscardsWrongRole(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	sess := adminSession()
	sess.Role = "USER"
	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession for non-admin role, got %v", err)
	}
	if mr.Exists(redisTokenKey) || mr.Exists(redisUserKey) {
		t.Fatal("expected session keys to be cleared after role mismatch")
	}
}

func TestRedisStoreDiscardsMalformedIdentity(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	mr.Set(redisTokenKey, "opaque-token")
	mr.Set(redisUserKey, "{not json")
	if _, err := store.Load(ctx); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession for malformed identity, got %v", err)
	}
	if mr.Exists(redisUserKey) {
		t.Fatal("expected malformed identity to be cleared")
	}
}

func TestRedisStoreClear(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	if err := store.Save(ctx, adminSession()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if mr.Exists(redisTokenKey) || mr.Exists(redisUserKey) {
		t.Fatal("expected all session keys removed")
	}
}
