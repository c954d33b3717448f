package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func TestCounterRepoSetGetInvalidate(t *testing.T) {
	mr, client := newMiniRedisClient(t)
	defer mr.Close()
	defer func() { _ = client.Close() }()

	repo := NewCounterRepo(client)
	ctx := context.Background()

	count, found, err := repo.GetAdmirerCount(ctx, 7)
	if err != nil {
		t.Fatalf("get before set: %v", err)
	}
	if found || count != 0 {
		t.Fatalf("expected miss before set, got count=%d found=%v", count, found)
	}

	if err := repo.SetAdmirerCount(ctx, 7, 12, time.Minute); err != nil {
		t.Fatalf("set admirer count: %v", err)
	}

	count, found, err = repo.GetAdmirerCount(ctx, 7)
	if err != nil {
		t.Fatalf("get after set: %v", err)
	}
	if !found || count != 12 {
		t.Fatalf("unexpected cached count: count=%d found=%v", count, found)
	}

	if err := repo.InvalidateAdmirerCount(ctx, 7); err != nil {
		t.Fatalf("invalidate admirer count: %v", err)
	}

	_, found, err = repo.GetAdmirerCount(ctx, 7)
	if err != nil {
		t.Fatalf("get after invalidate: %v", err)
	}
	if found {
		t.Fatalf("expected miss after invalidate")
	}
}

func TestCounterRepoTTLExpires(t *testing.T) {
	mr, client := newMiniRedisClient(t)
	defer mr.Close()
	defer func() { _ = client.Close() }()

	repo := NewCounterRepo(client)
	ctx := context.Background()

	if err := repo.SetAdmirerCount(ctx, 3, 5, time.Minute); err != nil {
		t.Fatalf("set admirer count: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	_, found, err := repo.GetAdmirerCount(ctx, 3)
	if err != nil {
		t.Fatalf("get after ttl: %v", err)
	}
	if found {
		t.Fatalf("expected miss after ttl expiry")
	}
}

func newMiniRedisClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}

	client := goredis.NewClient(&goredis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}
