package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/kushalkambar5/nitkknot/internal/domain/enums"
	pgrepo "github.com/kushalkambar5/nitkknot/internal/repo/postgres"
)

var ErrUserNotFound = errors.New("user not found")

type ProfileStore interface {
	Get(ctx context.Context, userID int64) (pgrepo.ProfileRecord, error)
	SetTier(ctx context.Context, userID int64, tier string) error
}

type Profile struct {
	UserID      int64
	DisplayName string
	Gender      string
	Tier        enums.Tier
	Verified    bool
}

type Service struct {
	profiles ProfileStore
}

func NewService(profiles ProfileStore) *Service {
	return &Service{profiles: profiles}
}

func (s *Service) Get(ctx context.Context, userID int64) (Profile, error) {
	if userID <= 0 {
		return Profile{}, fmt.Errorf("invalid user id")
	}
	if s.profiles == nil {
		return Profile{}, fmt.Errorf("user dependencies are not configured")
	}

	rec, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrProfileNotFound) {
			return Profile{}, ErrUserNotFound
		}
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}

	tier, ok := enums.ParseTier(rec.Tier)
	if !ok {
		tier = enums.TierStandard
	}

	return Profile{
		UserID:      rec.UserID,
		DisplayName: rec.DisplayName,
		Gender:      rec.Gender,
		Tier:        tier,
		Verified:    rec.Verified,
	}, nil
}

// UpgradeTier moves the user to the elevated tier. Upgrading an already
// elevated user is a no-op.
func (s *Service) UpgradeTier(ctx context.Context, userID int64) (enums.Tier, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return "", err
	}

	if profile.Tier == enums.TierElevated {
		return enums.TierElevated, nil
	}

	if err := s.profiles.SetTier(ctx, userID, string(enums.TierElevated)); err != nil {
		if errors.Is(err, pgrepo.ErrProfileNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("upgrade tier: %w", err)
	}

	return enums.TierElevated, nil
}
