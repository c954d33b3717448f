package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CandidateRepo struct {
	pool *pgxpool.Pool
}

func NewCandidateRepo(pool *pgxpool.Pool) *CandidateRepo {
	return &CandidateRepo{pool: pool}
}

type CandidateQuery struct {
	ViewerUserID      int64
	GenderFilter      string
	ApplyGenderFilter bool
	Limit             int
}

type CandidateRecord struct {
	UserID      int64
	DisplayName string
	Gender      string
	Verified    bool
	CreatedAt   time.Time
}

// List returns verified profiles the viewer has not interacted with yet.
// Profiles the viewer expressed interest in, rejected, or matched with are
// excluded, as is the viewer's own profile.
func (r *CandidateRepo) List(ctx context.Context, q CandidateQuery) ([]CandidateRecord, error) {
	if q.ViewerUserID <= 0 {
		return nil, fmt.Errorf("invalid viewer id")
	}
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if r.pool == nil {
		return []CandidateRecord{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT
	p.user_id,
	COALESCE(p.display_name, ''),
	COALESCE(p.gender, ''),
	p.verified,
	p.created_at
FROM profiles p
WHERE
	p.user_id <> $1
	AND p.verified = TRUE
	AND ($3 = FALSE OR p.gender = $4)
	AND NOT EXISTS (
		SELECT 1
		FROM interests i
		WHERE i.actor_user_id = $1 AND i.target_user_id = p.user_id
	)
	AND NOT EXISTS (
		SELECT 1
		FROM rejections rj
		WHERE rj.actor_user_id = $1 AND rj.target_user_id = p.user_id
	)
	AND NOT EXISTS (
		SELECT 1
		FROM matches m
		WHERE (m.user_a_id = $1 AND m.user_b_id = p.user_id)
			OR (m.user_a_id = p.user_id AND m.user_b_id = $1)
	)
ORDER BY p.created_at DESC, p.user_id DESC
LIMIT $2
`, q.ViewerUserID, q.Limit, q.ApplyGenderFilter, q.GenderFilter)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	items := make([]CandidateRecord, 0, q.Limit)
	for rows.Next() {
		var rec CandidateRecord
		if err := rows.Scan(
			&rec.UserID,
			&rec.DisplayName,
			&rec.Gender,
			&rec.Verified,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		items = append(items, rec)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate candidates: %w", rows.Err())
	}

	return items, nil
}
