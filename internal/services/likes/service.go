package likes

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	pgrepo "github.com/kushalkambar5/nitkknot/internal/repo/postgres"
)

type InterestStore interface {
	ListReceived(ctx context.Context, targetUserID int64, limit int) ([]pgrepo.AdmirerRecord, error)
	CountReceived(ctx context.Context, targetUserID int64) (int, error)
}

type CounterCache interface {
	GetAdmirerCount(ctx context.Context, userID int64) (int, bool, error)
	SetAdmirerCount(ctx context.Context, userID int64, count int, ttl time.Duration) error
}

type Admirer struct {
	UserID      int64
	DisplayName string
	Gender      string
	ViaLike     bool
	LikedAt     time.Time
}

type IncomingResult struct {
	Admirers []Admirer
	Total    int
}

type Config struct {
	CountCacheTTL time.Duration
}

type Service struct {
	interests InterestStore
	counters  CounterCache
	cfg       Config
	log       *zap.Logger
}

func NewService(interests InterestStore, counters CounterCache, cfg Config, log *zap.Logger) *Service {
	if cfg.CountCacheTTL <= 0 {
		cfg.CountCacheTTL = time.Minute
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Service{
		interests: interests,
		counters:  counters,
		cfg:       cfg,
		log:       log,
	}
}

// Incoming lists the people who expressed interest in the user. The total
// is served from the cache when fresh; a miss recomputes it from storage
// and refills the cache. Cache trouble degrades to a storage read.
func (s *Service) Incoming(ctx context.Context, userID int64, limit int) (IncomingResult, error) {
	if userID <= 0 {
		return IncomingResult{}, fmt.Errorf("invalid user id")
	}
	if s.interests == nil {
		return IncomingResult{}, fmt.Errorf("likes dependencies are not configured")
	}

	admirers, err := s.interests.ListReceived(ctx, userID, limit)
	if err != nil {
		return IncomingResult{}, fmt.Errorf("list admirers: %w", err)
	}

	total, err := s.totalAdmirers(ctx, userID)
	if err != nil {
		return IncomingResult{}, err
	}

	items := make([]Admirer, 0, len(admirers))
	for _, rec := range admirers {
		items = append(items, Admirer{
			UserID:      rec.FromUserID,
			DisplayName: rec.DisplayName,
			Gender:      rec.Gender,
			ViaLike:     rec.ViaLike,
			LikedAt:     rec.CreatedAt,
		})
	}

	return IncomingResult{Admirers: items, Total: total}, nil
}

func (s *Service) totalAdmirers(ctx context.Context, userID int64) (int, error) {
	if s.counters != nil {
		count, found, err := s.counters.GetAdmirerCount(ctx, userID)
		if err != nil {
			s.log.Warn("read admirer count cache", zap.Int64("user_id", userID), zap.Error(err))
		} else if found {
			return count, nil
		}
	}

	count, err := s.interests.CountReceived(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count admirers: %w", err)
	}

	if s.counters != nil {
		if err := s.counters.SetAdmirerCount(ctx, userID, count, s.cfg.CountCacheTTL); err != nil {
			s.log.Warn("refill admirer count cache", zap.Int64("user_id", userID), zap.Error(err))
		}
	}

	return count, nil
}
