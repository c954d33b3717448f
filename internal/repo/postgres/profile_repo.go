package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

type ProfileRecord struct {
	UserID       int64
	DisplayName  string
	Gender       string
	InterestedIn string
	Tier         string
	Verified     bool
	CreatedAt    time.Time
}

func (r *ProfileRepo) Get(ctx context.Context, userID int64) (ProfileRecord, error) {
	if userID <= 0 {
		return ProfileRecord{}, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return ProfileRecord{}, ErrProfileNotFound
	}

	var rec ProfileRecord
	err := r.pool.QueryRow(ctx, `
SELECT
	user_id,
	COALESCE(display_name, ''),
	COALESCE(gender, ''),
	COALESCE(interested_in, ''),
	COALESCE(tier, 'standard'),
	verified,
	created_at
FROM profiles
WHERE user_id = $1
LIMIT 1
`, userID).Scan(
		&rec.UserID,
		&rec.DisplayName,
		&rec.Gender,
		&rec.InterestedIn,
		&rec.Tier,
		&rec.Verified,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ProfileRecord{}, ErrProfileNotFound
		}
		return ProfileRecord{}, fmt.Errorf("get profile: %w", err)
	}

	return rec, nil
}

func (r *ProfileRepo) SetTier(ctx context.Context, userID int64, tier string) error {
	if userID <= 0 {
		return fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return ErrProfileNotFound
	}

	result, err := r.pool.Exec(ctx, `
UPDATE profiles
SET tier = $2, updated_at = NOW()
WHERE user_id = $1
`, userID, tier)
	if err != nil {
		return fmt.Errorf("set profile tier: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}
