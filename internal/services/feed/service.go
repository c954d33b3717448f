package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kushalkambar5/nitkknot/internal/domain/enums"
	pgrepo "github.com/kushalkambar5/nitkknot/internal/repo/postgres"
)

var ErrViewerNotFound = errors.New("viewer profile not found")

type CandidateStore interface {
	List(ctx context.Context, q pgrepo.CandidateQuery) ([]pgrepo.CandidateRecord, error)
}

type ProfileStore interface {
	Get(ctx context.Context, userID int64) (pgrepo.ProfileRecord, error)
}

type Config struct {
	DefaultBatchSize int
	MaxBatchSize     int
}

type Candidate struct {
	UserID      int64
	DisplayName string
	Gender      string
	Verified    bool
	JoinedAt    time.Time
}

type Service struct {
	candidates CandidateStore
	profiles   ProfileStore
	cfg        Config
}

func NewService(candidates CandidateStore, profiles ProfileStore, cfg Config) *Service {
	if cfg.DefaultBatchSize <= 0 {
		cfg.DefaultBatchSize = 20
	}
	if cfg.MaxBatchSize <= 0 {
		cfg.MaxBatchSize = 100
	}

	return &Service{
		candidates: candidates,
		profiles:   profiles,
		cfg:        cfg,
	}
}

// NextCandidates returns the viewer's next batch of browsable profiles.
// The viewer's stated preference narrows the batch by gender; a viewer
// open to any gender gets an unfiltered batch.
func (s *Service) NextCandidates(ctx context.Context, viewerID int64, batchSize int) ([]Candidate, error) {
	if viewerID <= 0 {
		return nil, fmt.Errorf("invalid viewer id")
	}
	if s.candidates == nil || s.profiles == nil {
		return nil, fmt.Errorf("feed dependencies are not configured")
	}

	if batchSize <= 0 {
		batchSize = s.cfg.DefaultBatchSize
	}
	if batchSize > s.cfg.MaxBatchSize {
		batchSize = s.cfg.MaxBatchSize
	}

	viewer, err := s.profiles.Get(ctx, viewerID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrProfileNotFound) {
			return nil, ErrViewerNotFound
		}
		return nil, fmt.Errorf("load viewer profile: %w", err)
	}

	query := pgrepo.CandidateQuery{
		ViewerUserID: viewerID,
		Limit:        batchSize,
	}
	if enums.Gender(viewer.InterestedIn).IsValid() {
		query.GenderFilter = viewer.InterestedIn
		query.ApplyGenderFilter = true
	}

	records, err := s.candidates.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	items := make([]Candidate, 0, len(records))
	for _, rec := range records {
		items = append(items, Candidate{
			UserID:      rec.UserID,
			DisplayName: rec.DisplayName,
			Gender:      rec.Gender,
			Verified:    rec.Verified,
			JoinedAt:    rec.CreatedAt,
		})
	}

	return items, nil
}
