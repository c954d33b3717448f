package history

import (
	"context"
	"testing"

	"github.com/kushalkambar5/nitkknot/internal/domain/enums"
)

type idListStub struct {
	ids []int64
}

func (s *idListStub) ListTargetIDs(_ context.Context, _ int64) ([]int64, error) {
	return s.ids, nil
}

func (s *idListStub) ListTargetIDsByActor(_ context.Context, _ int64) ([]int64, error) {
	return s.ids, nil
}

func TestHistoryMergesCategoriesWithPrecedence(t *testing.T) {
	rejections := &idListStub{ids: []int64{10, 11}}
	interests := &idListStub{ids: []int64{11, 12}}
	matches := &idListStub{ids: []int64{12}}
	svc := NewService(rejections, interests, matches)

	entries, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}

	want := []Entry{
		{TargetUserID: 12, Status: enums.RelationMatched},
		{TargetUserID: 11, Status: enums.RelationExpressedInterest},
		{TargetUserID: 10, Status: enums.RelationRejected},
	}
	if len(entries) != len(want) {
		t.Fatalf("unexpected entry count: got %d want %d", len(entries), len(want))
	}
	for i, entry := range entries {
		if entry != want[i] {
			t.Fatalf("entry %d: got %+v want %+v", i, entry, want[i])
		}
	}
}

func TestHistoryRejectedAndMatchedReportsMatchedOnce(t *testing.T) {
	rejections := &idListStub{ids: []int64{7}}
	matches := &idListStub{ids: []int64{7}}
	svc := NewService(rejections, &idListStub{}, matches)

	entries, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected a single entry, got %+v", entries)
	}
	if entries[0].TargetUserID != 7 || entries[0].Status != enums.RelationMatched {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}

func TestHistoryReversesInsertionOrder(t *testing.T) {
	rejections := &idListStub{ids: []int64{1, 2, 3}}
	svc := NewService(rejections, &idListStub{}, &idListStub{})

	entries, err := svc.List(context.Background(), 9)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}

	wantOrder := []int64{3, 2, 1}
	for i, entry := range entries {
		if entry.TargetUserID != wantOrder[i] {
			t.Fatalf("entry %d: got %d want %d", i, entry.TargetUserID, wantOrder[i])
		}
	}
}

func TestHistoryEmpty(t *testing.T) {
	svc := NewService(&idListStub{}, &idListStub{}, &idListStub{})

	entries, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty history, got %+v", entries)
	}
}
