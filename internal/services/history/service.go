package history

import (
	"context"
	"fmt"

	"github.com/kushalkambar5/nitkknot/internal/domain/enums"
)

type RejectionStore interface {
	ListTargetIDs(ctx context.Context, actorUserID int64) ([]int64, error)
}

type InterestStore interface {
	ListTargetIDsByActor(ctx context.Context, actorUserID int64) ([]int64, error)
}

type MatchStore interface {
	ListTargetIDs(ctx context.Context, userID int64) ([]int64, error)
}

type Entry struct {
	TargetUserID int64
	Status       enums.RelationStatus
}

type Service struct {
	rejections RejectionStore
	interests  InterestStore
	matches    MatchStore
}

func NewService(rejections RejectionStore, interests InterestStore, matches MatchStore) *Service {
	return &Service{
		rejections: rejections,
		interests:  interests,
		matches:    matches,
	}
}

// List returns one entry per profile the user has acted on, most recent
// first. A profile appearing in several categories keeps a single entry
// with the strongest status: matched wins over expressed interest, which
// wins over rejected.
func (s *Service) List(ctx context.Context, userID int64) ([]Entry, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("invalid user id")
	}
	if s.rejections == nil || s.interests == nil || s.matches == nil {
		return nil, fmt.Errorf("history dependencies are not configured")
	}

	rejected, err := s.rejections.ListTargetIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list rejections: %w", err)
	}
	interested, err := s.interests.ListTargetIDsByActor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}
	matched, err := s.matches.ListTargetIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	order := make([]int64, 0, len(rejected)+len(interested)+len(matched))
	status := make(map[int64]enums.RelationStatus, len(order))

	merge := func(ids []int64, st enums.RelationStatus) {
		for _, id := range ids {
			if _, seen := status[id]; !seen {
				order = append(order, id)
			}
			status[id] = st
		}
	}

	merge(rejected, enums.RelationRejected)
	merge(interested, enums.RelationExpressedInterest)
	merge(matched, enums.RelationMatched)

	entries := make([]Entry, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		entries = append(entries, Entry{TargetUserID: id, Status: status[id]})
	}

	return entries, nil
}
