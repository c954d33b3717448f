package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepo struct {
	pool *pgxpool.Pool
}

func NewReportRepo(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

func (r *ReportRepo) Create(ctx context.Context, tx pgx.Tx, reporterUserID, targetUserID int64, reason string, now time.Time) error {
	if reporterUserID <= 0 || targetUserID <= 0 || reporterUserID == targetUserID {
		return fmt.Errorf("invalid report payload")
	}
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("report reason is required")
	}
	if tx == nil {
		return fmt.Errorf("transaction is required")
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO reports (
	reporter_user_id,
	target_user_id,
	reason,
	created_at
) VALUES ($1, $2, $3, $4)
`, reporterUserID, targetUserID, strings.TrimSpace(reason), now.UTC()); err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	return nil
}
