package quota

import (
	"context"
	"testing"
	"time"

	"github.com/kushalkambar5/nitkknot/internal/domain/enums"
)

type stubStats struct {
	lifetime    int
	window      int
	lastSince   time.Time
	lifetimeErr error
}

func (s *stubStats) CountByActor(_ context.Context, _ int64) (int, error) {
	return s.lifetime, s.lifetimeErr
}

func (s *stubStats) CountEventsSince(_ context.Context, _ int64, since time.Time) (int, error) {
	s.lastSince = since
	return s.window, nil
}

func TestStandardTierLifetimeCap(t *testing.T) {
	stats := &stubStats{lifetime: 2}
	policy := NewPolicy(stats, Config{})
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := policy.CanExpressInterest(context.Background(), 1, enums.TierStandard, now); err != nil {
		t.Fatalf("expected interest allowed below cap: %v", err)
	}

	stats.lifetime = 3
	err := policy.CanExpressInterest(context.Background(), 1, enums.TierStandard, now)
	le, ok := IsLimitError(err)
	if !ok {
		t.Fatalf("expected limit error, got %v", err)
	}
	if le.Scope != ScopeLifetime || le.Limit != 3 {
		t.Fatalf("unexpected limit error: %+v", le)
	}
}

func TestElevatedTierWindowCap(t *testing.T) {
	stats := &stubStats{window: 14}
	policy := NewPolicy(stats, Config{})
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := policy.CanExpressInterest(context.Background(), 1, enums.TierElevated, now); err != nil {
		t.Fatalf("expected interest allowed below window cap: %v", err)
	}

	wantSince := now.Add(-time.Hour)
	if !stats.lastSince.Equal(wantSince) {
		t.Fatalf("unexpected window start: got %s want %s", stats.lastSince, wantSince)
	}

	stats.window = 15
	err := policy.CanExpressInterest(context.Background(), 1, enums.TierElevated, now)
	le, ok := IsLimitError(err)
	if !ok {
		t.Fatalf("expected limit error, got %v", err)
	}
	if le.Scope != ScopeWindow || le.Limit != 15 || le.Window != time.Hour {
		t.Fatalf("unexpected limit error: %+v", le)
	}
}

func TestElevatedTierIgnoresLifetimeCount(t *testing.T) {
	stats := &stubStats{lifetime: 100, window: 0}
	policy := NewPolicy(stats, Config{})
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := policy.CanExpressInterest(context.Background(), 1, enums.TierElevated, now); err != nil {
		t.Fatalf("elevated tier must not consult lifetime count: %v", err)
	}
}

func TestConfigOverridesCaps(t *testing.T) {
	stats := &stubStats{lifetime: 4}
	policy := NewPolicy(stats, Config{StandardLifetimeCap: 5})
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := policy.CanExpressInterest(context.Background(), 1, enums.TierStandard, now); err != nil {
		t.Fatalf("expected interest allowed under raised cap: %v", err)
	}
}
