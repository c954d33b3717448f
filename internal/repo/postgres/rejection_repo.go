package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RejectionRepo struct {
	pool *pgxpool.Pool
}

func NewRejectionRepo(pool *pgxpool.Pool) *RejectionRepo {
	return &RejectionRepo{pool: pool}
}

func (r *RejectionRepo) Upsert(ctx context.Context, tx pgx.Tx, actorUserID, targetUserID int64, now time.Time) error {
	if actorUserID <= 0 || targetUserID <= 0 || actorUserID == targetUserID {
		return fmt.Errorf("invalid rejection payload")
	}
	if tx == nil {
		return fmt.Errorf("transaction is required")
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO rejections (
	actor_user_id,
	target_user_id,
	created_at
) VALUES ($1, $2, $3)
ON CONFLICT (actor_user_id, target_user_id) DO NOTHING
`, actorUserID, targetUserID, now.UTC()); err != nil {
		return fmt.Errorf("upsert rejection: %w", err)
	}

	return nil
}

func (r *RejectionRepo) ListTargetIDs(ctx context.Context, actorUserID int64) ([]int64, error) {
	if actorUserID <= 0 {
		return nil, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return []int64{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT target_user_id
FROM rejections
WHERE actor_user_id = $1
ORDER BY created_at ASC, target_user_id ASC
`, actorUserID)
	if err != nil {
		return nil, fmt.Errorf("list rejection targets: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0, 16)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan rejection target: %w", err)
		}
		ids = append(ids, id)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate rejection targets: %w", rows.Err())
	}

	return ids, nil
}
