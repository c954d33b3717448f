package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InterestRepo struct {
	pool *pgxpool.Pool
}

func NewInterestRepo(pool *pgxpool.Pool) *InterestRepo {
	return &InterestRepo{pool: pool}
}

type AdmirerRecord struct {
	FromUserID  int64
	DisplayName string
	Gender      string
	ViaLike     bool
	CreatedAt   time.Time
}

// Upsert records an expressed interest and one quota event. The interests
// row is keyed by the pair, so a repeat insert leaves it untouched; the
// quota event is appended on every call.
func (r *InterestRepo) Upsert(ctx context.Context, tx pgx.Tx, actorUserID, targetUserID int64, viaLike bool, now time.Time) (bool, error) {
	if actorUserID <= 0 || targetUserID <= 0 || actorUserID == targetUserID {
		return false, fmt.Errorf("invalid interest payload")
	}
	if tx == nil {
		return false, fmt.Errorf("transaction is required")
	}

	result, err := tx.Exec(ctx, `
INSERT INTO interests (
	actor_user_id,
	target_user_id,
	via_like,
	created_at
) VALUES ($1, $2, $3, $4)
ON CONFLICT (actor_user_id, target_user_id) DO NOTHING
`, actorUserID, targetUserID, viaLike, now.UTC())
	if err != nil {
		return false, fmt.Errorf("upsert interest: %w", err)
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO interest_events (
	actor_user_id,
	created_at
) VALUES ($1, $2)
`, actorUserID, now.UTC()); err != nil {
		return false, fmt.Errorf("append interest event: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *InterestRepo) Exists(ctx context.Context, actorUserID, targetUserID int64) (bool, error) {
	if actorUserID <= 0 || targetUserID <= 0 {
		return false, fmt.Errorf("invalid interest lookup payload")
	}
	if r.pool == nil {
		return false, nil
	}

	var one int
	err := r.pool.QueryRow(ctx, `
SELECT 1
FROM interests
WHERE actor_user_id = $1 AND target_user_id = $2
LIMIT 1
`, actorUserID, targetUserID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lookup interest: %w", err)
	}

	return true, nil
}

func (r *InterestRepo) CountByActor(ctx context.Context, actorUserID int64) (int, error) {
	if actorUserID <= 0 {
		return 0, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return 0, nil
	}

	var count int
	if err := r.pool.QueryRow(ctx, `
SELECT COUNT(*)
FROM interests
WHERE actor_user_id = $1
`, actorUserID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count interests: %w", err)
	}

	return count, nil
}

func (r *InterestRepo) CountEventsSince(ctx context.Context, actorUserID int64, since time.Time) (int, error) {
	if actorUserID <= 0 {
		return 0, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return 0, nil
	}

	var count int
	if err := r.pool.QueryRow(ctx, `
SELECT COUNT(*)
FROM interest_events
WHERE actor_user_id = $1 AND created_at > $2
`, actorUserID, since.UTC()).Scan(&count); err != nil {
		return 0, fmt.Errorf("count interest events: %w", err)
	}

	return count, nil
}

func (r *InterestRepo) ListTargetIDsByActor(ctx context.Context, actorUserID int64) ([]int64, error) {
	if actorUserID <= 0 {
		return nil, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return []int64{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT target_user_id
FROM interests
WHERE actor_user_id = $1
ORDER BY created_at ASC, target_user_id ASC
`, actorUserID)
	if err != nil {
		return nil, fmt.Errorf("list interest targets: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0, 16)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan interest target: %w", err)
		}
		ids = append(ids, id)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate interest targets: %w", rows.Err())
	}

	return ids, nil
}

func (r *InterestRepo) ListReceived(ctx context.Context, targetUserID int64, limit int) ([]AdmirerRecord, error) {
	if targetUserID <= 0 {
		return nil, fmt.Errorf("invalid user id")
	}
	if limit <= 0 {
		limit = 50
	}
	if r.pool == nil {
		return []AdmirerRecord{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT
	i.actor_user_id,
	COALESCE(p.display_name, ''),
	COALESCE(p.gender, ''),
	i.via_like,
	i.created_at
FROM interests i
JOIN profiles p ON p.user_id = i.actor_user_id
WHERE i.target_user_id = $1
ORDER BY i.created_at DESC, i.actor_user_id DESC
LIMIT $2
`, targetUserID, limit)
	if err != nil {
		return nil, fmt.Errorf("list received interests: %w", err)
	}
	defer rows.Close()

	items := make([]AdmirerRecord, 0, limit)
	for rows.Next() {
		var rec AdmirerRecord
		if err := rows.Scan(
			&rec.FromUserID,
			&rec.DisplayName,
			&rec.Gender,
			&rec.ViaLike,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan received interest: %w", err)
		}
		items = append(items, rec)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate received interests: %w", rows.Err())
	}

	return items, nil
}

func (r *InterestRepo) CountReceived(ctx context.Context, targetUserID int64) (int, error) {
	if targetUserID <= 0 {
		return 0, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return 0, nil
	}

	var count int
	if err := r.pool.QueryRow(ctx, `
SELECT COUNT(*)
FROM interests
WHERE target_user_id = $1
`, targetUserID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count received interests: %w", err)
	}

	return count, nil
}
