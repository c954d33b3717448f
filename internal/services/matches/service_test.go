package matches

import (
	"context"
	"testing"
	"time"

	pgrepo "github.com/kushalkambar5/nitkknot/internal/repo/postgres"
)

type matchStoreStub struct {
	records   []pgrepo.MatchRecord
	lastLimit int
}

func (s *matchStoreStub) ListForUser(_ context.Context, _ int64, limit int) ([]pgrepo.MatchRecord, error) {
	s.lastLimit = limit
	return s.records, nil
}

func TestListMapsRecords(t *testing.T) {
	matchedAt := time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)
	store := &matchStoreStub{
		records: []pgrepo.MatchRecord{
			{TargetUserID: 8, DisplayName: "Ravi", Gender: "male", CreatedAt: matchedAt},
		},
	}
	svc := NewService(store)

	items, err := svc.List(context.Background(), 1, 25)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("unexpected match count: %d", len(items))
	}
	if items[0].UserID != 8 || items[0].DisplayName != "Ravi" || !items[0].MatchedAt.Equal(matchedAt) {
		t.Fatalf("unexpected match: %+v", items[0])
	}
	if store.lastLimit != 25 {
		t.Fatalf("unexpected limit passed to store: %d", store.lastLimit)
	}
}

func TestListRejectsInvalidUser(t *testing.T) {
	svc := NewService(&matchStoreStub{})

	if _, err := svc.List(context.Background(), 0, 10); err == nil {
		t.Fatalf("expected error for invalid user id")
	}
}
