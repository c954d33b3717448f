package swipes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/kushalkambar5/nitkknot/internal/domain/enums"
	"github.com/kushalkambar5/nitkknot/internal/pkg/validate"
	pgrepo "github.com/kushalkambar5/nitkknot/internal/repo/postgres"
)

const (
	ActionRightSwipe = "RIGHT_SWIPE"
	ActionLike       = "LIKE"
	ActionPass       = "PASS"
)

var (
	ErrInvalidTarget     = errors.New("invalid target")
	ErrUnsupportedAction = errors.New("unsupported action")
	ErrEmptyReason       = errors.New("report reason is required")
)

type InterestStore interface {
	Upsert(ctx context.Context, tx pgx.Tx, actorUserID, targetUserID int64, viaLike bool, now time.Time) (bool, error)
	Exists(ctx context.Context, actorUserID, targetUserID int64) (bool, error)
}

type RejectionStore interface {
	Upsert(ctx context.Context, tx pgx.Tx, actorUserID, targetUserID int64, now time.Time) error
}

type MatchStore interface {
	CreateIfMutualInterest(ctx context.Context, tx pgx.Tx, userID, targetID int64) (bool, error)
	Exists(ctx context.Context, userID, targetID int64) (bool, error)
}

type ReportStore interface {
	Create(ctx context.Context, tx pgx.Tx, reporterUserID, targetUserID int64, reason string, now time.Time) error
}

type ProfileStore interface {
	Get(ctx context.Context, userID int64) (pgrepo.ProfileRecord, error)
}

type QuotaPolicy interface {
	CanExpressInterest(ctx context.Context, userID int64, tier enums.Tier, now time.Time) error
}

type CounterCache interface {
	InvalidateAdmirerCount(ctx context.Context, userID int64) error
}

type InterestResult struct {
	Matched          bool
	AlreadyExpressed bool
}

type Service struct {
	pool       *pgxpool.Pool
	interests  InterestStore
	rejections RejectionStore
	matches    MatchStore
	reports    ReportStore
	profiles   ProfileStore
	quota      QuotaPolicy
	counters   CounterCache
	log        *zap.Logger
	now        func() time.Time
	withTx     func(ctx context.Context, pool *pgxpool.Pool, fn func(context.Context, pgx.Tx) error) error
}

type Dependencies struct {
	Pool       *pgxpool.Pool
	Interests  InterestStore
	Rejections RejectionStore
	Matches    MatchStore
	Reports    ReportStore
	Profiles   ProfileStore
	Quota      QuotaPolicy
	Counters   CounterCache
	Logger     *zap.Logger

	// TxRunner defaults to pgrepo.WithTx; tests swap it out.
	TxRunner func(ctx context.Context, pool *pgxpool.Pool, fn func(context.Context, pgx.Tx) error) error
}

func NewService(deps Dependencies) *Service {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	withTx := deps.TxRunner
	if withTx == nil {
		withTx = pgrepo.WithTx
	}

	return &Service{
		pool:       deps.Pool,
		interests:  deps.Interests,
		rejections: deps.Rejections,
		matches:    deps.Matches,
		reports:    deps.Reports,
		profiles:   deps.Profiles,
		quota:      deps.Quota,
		counters:   deps.Counters,
		log:        log,
		now:        time.Now,
		withTx:     withTx,
	}
}

// ExpressInterest processes a RIGHT_SWIPE or LIKE action. A repeat toward
// the same target succeeds without consuming quota. The reciprocal check
// runs inside the same transaction as the write, and once more after commit
// so that two users completing the pair at the same time both see the match.
func (s *Service) ExpressInterest(ctx context.Context, actorID, targetID int64, tier enums.Tier, viaLike bool) (InterestResult, error) {
	if actorID <= 0 || targetID <= 0 || actorID == targetID {
		return InterestResult{}, ErrInvalidTarget
	}
	if s.interests == nil || s.matches == nil || s.profiles == nil || s.quota == nil {
		return InterestResult{}, fmt.Errorf("swipe dependencies are not configured")
	}

	if _, err := s.profiles.Get(ctx, targetID); err != nil {
		if errors.Is(err, pgrepo.ErrProfileNotFound) {
			return InterestResult{}, ErrInvalidTarget
		}
		return InterestResult{}, fmt.Errorf("load target profile: %w", err)
	}

	already, err := s.interests.Exists(ctx, actorID, targetID)
	if err != nil {
		return InterestResult{}, fmt.Errorf("check existing interest: %w", err)
	}
	if already {
		matched, err := s.matches.Exists(ctx, actorID, targetID)
		if err != nil {
			return InterestResult{}, fmt.Errorf("check existing match: %w", err)
		}
		return InterestResult{Matched: matched, AlreadyExpressed: true}, nil
	}

	now := s.now().UTC()
	if err := s.quota.CanExpressInterest(ctx, actorID, tier, now); err != nil {
		return InterestResult{}, err
	}

	matched := false
	if err := s.withTx(ctx, s.pool, func(txCtx context.Context, tx pgx.Tx) error {
		if _, err := s.interests.Upsert(txCtx, tx, actorID, targetID, viaLike, now); err != nil {
			return err
		}
		created, err := s.matches.CreateIfMutualInterest(txCtx, tx, actorID, targetID)
		if err != nil {
			return err
		}
		matched = created
		return nil
	}); err != nil {
		return InterestResult{}, err
	}

	s.invalidateAdmirerCount(ctx, targetID)

	if !matched {
		matched, err = s.confirmMutual(ctx, actorID, targetID)
		if err != nil {
			return InterestResult{}, err
		}
	}

	return InterestResult{Matched: matched}, nil
}

// confirmMutual re-runs the reciprocal check after the interest commit.
// If the target's own interest landed between our in-tx check and commit,
// this pass records the match instead of losing it.
func (s *Service) confirmMutual(ctx context.Context, actorID, targetID int64) (bool, error) {
	matched := false
	if err := s.withTx(ctx, s.pool, func(txCtx context.Context, tx pgx.Tx) error {
		created, err := s.matches.CreateIfMutualInterest(txCtx, tx, actorID, targetID)
		if err != nil {
			return err
		}
		matched = created
		return nil
	}); err != nil {
		return false, fmt.Errorf("confirm mutual interest: %w", err)
	}

	return matched, nil
}

func (s *Service) Reject(ctx context.Context, actorID, targetID int64) error {
	if actorID <= 0 || targetID <= 0 || actorID == targetID {
		return ErrInvalidTarget
	}
	if s.rejections == nil || s.profiles == nil {
		return fmt.Errorf("swipe dependencies are not configured")
	}

	if _, err := s.profiles.Get(ctx, targetID); err != nil {
		if errors.Is(err, pgrepo.ErrProfileNotFound) {
			return ErrInvalidTarget
		}
		return fmt.Errorf("load target profile: %w", err)
	}

	now := s.now().UTC()
	return s.withTx(ctx, s.pool, func(txCtx context.Context, tx pgx.Tx) error {
		return s.rejections.Upsert(txCtx, tx, actorID, targetID, now)
	})
}

func (s *Service) Report(ctx context.Context, reporterID, targetID int64, reason string) error {
	if reporterID <= 0 || targetID <= 0 || reporterID == targetID {
		return ErrInvalidTarget
	}
	if !validate.Required(reason) {
		return ErrEmptyReason
	}
	if s.reports == nil || s.profiles == nil {
		return fmt.Errorf("swipe dependencies are not configured")
	}

	if _, err := s.profiles.Get(ctx, targetID); err != nil {
		if errors.Is(err, pgrepo.ErrProfileNotFound) {
			return ErrInvalidTarget
		}
		return fmt.Errorf("load target profile: %w", err)
	}

	// A report records the complaint only. It never mutates interests,
	// rejections or matches.
	now := s.now().UTC()
	return s.withTx(ctx, s.pool, func(txCtx context.Context, tx pgx.Tx) error {
		return s.reports.Create(txCtx, tx, reporterID, targetID, reason, now)
	})
}

func (s *Service) invalidateAdmirerCount(ctx context.Context, targetID int64) {
	if s.counters == nil {
		return
	}
	if err := s.counters.InvalidateAdmirerCount(ctx, targetID); err != nil {
		s.log.Warn("invalidate admirer count",
			zap.Int64("target_user_id", targetID),
			zap.Error(err),
		)
	}
}

func NormalizeAction(action string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(action)) {
	case ActionRightSwipe:
		return ActionRightSwipe, nil
	case ActionLike:
		return ActionLike, nil
	case ActionPass:
		return ActionPass, nil
	default:
		return "", ErrUnsupportedAction
	}
}
