package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kushalkambar5/nitkknot/internal/domain/enums"
	authsvc "github.com/kushalkambar5/nitkknot/internal/services/auth"
	swipesvc "github.com/kushalkambar5/nitkknot/internal/services/swipes"
)

type reportStoreStub struct {
	calls int
}

func (s *reportStoreStub) Create(_ context.Context, _ pgx.Tx, _, _ int64, _ string, _ time.Time) error {
	s.calls++
	return nil
}

type rejectionStoreStub struct {
	calls int
}

func (s *rejectionStoreStub) Upsert(_ context.Context, _ pgx.Tx, _, _ int64, _ time.Time) error {
	s.calls++
	return nil
}

func TestReportHandlerRequiresReason(t *testing.T) {
	svc := swipesvc.NewService(swipesvc.Dependencies{
		Reports:    &reportStoreStub{},
		Rejections: &rejectionStoreStub{},
		Profiles:   &profileStoreStub{},
	})
	h := NewReportHandler(svc)

	resp := performReportRequest(t, h, 55, "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d want %d", resp.Code, http.StatusBadRequest)
	}

	var payload struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Code != "VALIDATION_ERROR" {
		t.Fatalf("unexpected error code: %q", payload.Code)
	}
}

func TestReportHandlerRecordsReport(t *testing.T) {
	reports := &reportStoreStub{}
	rejections := &rejectionStoreStub{}
	svc := swipesvc.NewService(swipesvc.Dependencies{
		Reports:    reports,
		Rejections: rejections,
		Profiles:   &profileStoreStub{},
		TxRunner: func(ctx context.Context, _ *pgxpool.Pool, fn func(context.Context, pgx.Tx) error) error {
			return fn(ctx, nil)
		},
	})
	h := NewReportHandler(svc)

	resp := performReportRequest(t, h, 55, "spam account")
	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", resp.Code, resp.Body.String())
	}
	if reports.calls != 1 {
		t.Fatalf("unexpected report writes: %d", reports.calls)
	}
	if rejections.calls != 0 {
		t.Fatalf("report must not write a rejection, got %d", rejections.calls)
	}
}

func performReportRequest(t *testing.T, h *ReportHandler, targetID int64, reason string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"target_id": targetID,
		"reason":    reason,
	})
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/report", bytes.NewReader(body))
	req = req.WithContext(authsvc.WithIdentity(context.Background(), authsvc.Identity{
		UserID: 101,
		Tier:   enums.TierStandard,
	}))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}
