package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestMemoryLimiterEnforcesWindow(t *testing.T) {
	now := time.Unix(1700000000, 0)
	limiter := NewMemoryLimiter(MemoryLimiterConfig{Now: func() time.Time { return now }})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		decision, err := limiter.Allow(ctx, "10.0.0.1", 2, time.Minute)
		if err != nil {
			t.Fatalf("allow %d: %v", i, err)
		}
		if !decision.Allowed {
			t.Fatalf("request %d should be allowed", i)
		}
	}

	decision, err := limiter.Allow(ctx, "10.0.0.1", 2, time.Minute)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if decision.Allowed {
		t.Fatal("third request in window should be denied")
	}

	// A different key is an independent bucket.
	decision, err = limiter.Allow(ctx, "10.0.0.2", 2, time.Minute)
	if err != nil {
		t.Fatalf("allow other key: %v", err)
	}
	if !decision.Allowed {
		t.Fatal("other client should be allowed")
	}

	now = now.Add(2 * time.Minute)
	decision, err = limiter.Allow(ctx, "10.0.0.1", 2, time.Minute)
	if err != nil {
		t.Fatalf("allow after window: %v", err)
	}
	if !decision.Allowed {
		t.Fatal("window expiry should reset the bucket")
	}
}

func TestMemoryLimiterZeroLimitAllowsAll(t *testing.T) {
	limiter := NewMemoryLimiter(MemoryLimiterConfig{})
	decision, err := limiter.Allow(context.Background(), "any", 0, time.Minute)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if !decision.Allowed {
		t.Fatal("zero limit disables limiting")
	}
}

func TestRedisLimiterEnforcesLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	limiter := NewRedisLimiterWithClient(client, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		decision, err := limiter.Allow(ctx, "10.0.0.1", 3, time.Minute)
		if err != nil {
			t.Fatalf("allow %d: %v", i, err)
		}
		if !decision.Allowed {
			t.Fatalf("request %d should be allowed", i)
		}
	}

	decision, err := limiter.Allow(ctx, "10.0.0.1", 3, time.Minute)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if decision.Allowed {
		t.Fatal("request past the limit should be denied")
	}
	if decision.Remaining != 0 {
		t.Fatalf("expected no remaining budget, got %d", decision.Remaining)
	}
}
