package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const admirerCountPrefix = "admirer_count:"

type CounterRepo struct {
	client *goredis.Client
}

func NewCounterRepo(client *goredis.Client) *CounterRepo {
	return &CounterRepo{client: client}
}

func (r *CounterRepo) GetAdmirerCount(ctx context.Context, userID int64) (int, bool, error) {
	if r.client == nil {
		return 0, false, fmt.Errorf("redis client is nil")
	}
	if userID <= 0 {
		return 0, false, fmt.Errorf("invalid user id")
	}

	value, err := r.client.Get(ctx, admirerCountKey(userID)).Result()
	if err != nil {
		if err == goredis.Nil {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("get admirer count: %w", err)
	}

	count, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, fmt.Errorf("parse admirer count: %w", err)
	}

	return count, true, nil
}

func (r *CounterRepo) SetAdmirerCount(ctx context.Context, userID int64, count int, ttl time.Duration) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if userID <= 0 || count < 0 {
		return fmt.Errorf("invalid admirer count payload")
	}

	if err := r.client.Set(ctx, admirerCountKey(userID), count, ttl).Err(); err != nil {
		return fmt.Errorf("set admirer count: %w", err)
	}

	return nil
}

func (r *CounterRepo) InvalidateAdmirerCount(ctx context.Context, userID int64) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if userID <= 0 {
		return fmt.Errorf("invalid user id")
	}

	if err := r.client.Del(ctx, admirerCountKey(userID)).Err(); err != nil {
		return fmt.Errorf("invalidate admirer count: %w", err)
	}

	return nil
}

func admirerCountKey(userID int64) string {
	return admirerCountPrefix + strconv.FormatInt(userID, 10)
}
