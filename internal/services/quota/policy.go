package quota

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kushalkambar5/nitkknot/internal/domain/enums"
	"github.com/kushalkambar5/nitkknot/internal/domain/rules"
)

const (
	ScopeLifetime = "lifetime"
	ScopeWindow   = "window"
)

type LimitError struct {
	Scope  string
	Limit  int
	Window time.Duration
}

func (e LimitError) Error() string {
	return "interest quota exceeded"
}

func IsLimitError(err error) (*LimitError, bool) {
	var le LimitError
	if errors.As(err, &le) {
		return &le, true
	}
	return nil, false
}

type Stats interface {
	CountByActor(ctx context.Context, actorUserID int64) (int, error)
	CountEventsSince(ctx context.Context, actorUserID int64, since time.Time) (int, error)
}

type Config struct {
	StandardLifetimeCap int
	ElevatedWindowCap   int
	ElevatedWindow      time.Duration
}

type Policy struct {
	stats Stats
	cfg   Config
}

func NewPolicy(stats Stats, cfg Config) *Policy {
	if cfg.StandardLifetimeCap <= 0 {
		cfg.StandardLifetimeCap = rules.StandardLifetimeCap
	}
	if cfg.ElevatedWindowCap <= 0 {
		cfg.ElevatedWindowCap = rules.ElevatedWindowCap
	}
	if cfg.ElevatedWindow <= 0 {
		cfg.ElevatedWindow = rules.InterestWindow
	}

	return &Policy{stats: stats, cfg: cfg}
}

// CanExpressInterest decides whether the user may spend one more interest
// action right now. Standard members carry a lifetime cap; elevated members
// are limited inside a sliding window that frees up as old actions age out.
func (p *Policy) CanExpressInterest(ctx context.Context, userID int64, tier enums.Tier, now time.Time) error {
	if userID <= 0 {
		return fmt.Errorf("invalid user id")
	}
	if p.stats == nil {
		return fmt.Errorf("quota stats are not configured")
	}

	switch tier {
	case enums.TierElevated:
		since := rules.WindowStart(now.UTC(), p.cfg.ElevatedWindow)
		used, err := p.stats.CountEventsSince(ctx, userID, since)
		if err != nil {
			return fmt.Errorf("count window interest events: %w", err)
		}
		if used >= p.cfg.ElevatedWindowCap {
			return LimitError{
				Scope:  ScopeWindow,
				Limit:  p.cfg.ElevatedWindowCap,
				Window: p.cfg.ElevatedWindow,
			}
		}
	default:
		used, err := p.stats.CountByActor(ctx, userID)
		if err != nil {
			return fmt.Errorf("count lifetime interests: %w", err)
		}
		if used >= p.cfg.StandardLifetimeCap {
			return LimitError{
				Scope: ScopeLifetime,
				Limit: p.cfg.StandardLifetimeCap,
			}
		}
	}

	return nil
}
