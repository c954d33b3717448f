package matches

import (
	"context"
	"fmt"
	"time"

	pgrepo "github.com/kushalkambar5/nitkknot/internal/repo/postgres"
)

type MatchStore interface {
	ListForUser(ctx context.Context, userID int64, limit int) ([]pgrepo.MatchRecord, error)
}

type Match struct {
	UserID      int64
	DisplayName string
	Gender      string
	MatchedAt   time.Time
}

type Service struct {
	matches MatchStore
}

func NewService(matches MatchStore) *Service {
	return &Service{matches: matches}
}

func (s *Service) List(ctx context.Context, userID int64, limit int) ([]Match, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("invalid user id")
	}
	if s.matches == nil {
		return nil, fmt.Errorf("match dependencies are not configured")
	}

	records, err := s.matches.ListForUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	items := make([]Match, 0, len(records))
	for _, rec := range records {
		items = append(items, Match{
			UserID:      rec.TargetUserID,
			DisplayName: rec.DisplayName,
			Gender:      rec.Gender,
			MatchedAt:   rec.CreatedAt,
		})
	}

	return items, nil
}
