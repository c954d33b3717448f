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

	"github.com/kushalkambar5/nitkknot/internal/domain/enums"
	pgrepo "github.com/kushalkambar5/nitkknot/internal/repo/postgres"
	authsvc "github.com/kushalkambar5/nitkknot/internal/services/auth"
	quotasvc "github.com/kushalkambar5/nitkknot/internal/services/quota"
	swipesvc "github.com/kushalkambar5/nitkknot/internal/services/swipes"
)

type interestStoreStub struct {
	exists bool
}

func (s *interestStoreStub) Upsert(_ context.Context, _ pgx.Tx, _, _ int64, _ bool, _ time.Time) (bool, error) {
	return true, nil
}

func (s *interestStoreStub) Exists(_ context.Context, _, _ int64) (bool, error) {
	return s.exists, nil
}

type matchStoreStub struct {
	exists bool
}

func (s *matchStoreStub) CreateIfMutualInterest(_ context.Context, _ pgx.Tx, _, _ int64) (bool, error) {
	return false, nil
}

func (s *matchStoreStub) Exists(_ context.Context, _, _ int64) (bool, error) {
	return s.exists, nil
}

type profileStoreStub struct {
	missing bool
}

func (s *profileStoreStub) Get(_ context.Context, userID int64) (pgrepo.ProfileRecord, error) {
	if s.missing {
		return pgrepo.ProfileRecord{}, pgrepo.ErrProfileNotFound
	}
	return pgrepo.ProfileRecord{UserID: userID, Verified: true, Tier: "standard"}, nil
}

type quotaPolicyStub struct {
	err error
}

func (s *quotaPolicyStub) CanExpressInterest(_ context.Context, _ int64, _ enums.Tier, _ time.Time) error {
	return s.err
}

func newSwipeService(interests *interestStoreStub, matches *matchStoreStub, profiles *profileStoreStub, policy *quotaPolicyStub) *swipesvc.Service {
	return swipesvc.NewService(swipesvc.Dependencies{
		Interests: interests,
		Matches:   matches,
		Profiles:  profiles,
		Quota:     policy,
	})
}

func TestSwipeHandlerRepeatInterest(t *testing.T) {
	svc := newSwipeService(&interestStoreStub{exists: true}, &matchStoreStub{exists: true}, &profileStoreStub{}, &quotaPolicyStub{})
	h := NewSwipeHandler(svc)

	resp := performSwipeRequest(t, h, 55, "RIGHT_SWIPE", true)
	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.Code)
	}

	var payload struct {
		OK               bool `json:"ok"`
		Matched          bool `json:"matched"`
		AlreadyExpressed bool `json:"already_expressed"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.OK || !payload.AlreadyExpressed || !payload.Matched {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestSwipeHandlerQuotaExceeded(t *testing.T) {
	policy := &quotaPolicyStub{err: quotasvc.LimitError{Scope: quotasvc.ScopeLifetime, Limit: 3}}
	svc := newSwipeService(&interestStoreStub{}, &matchStoreStub{}, &profileStoreStub{}, policy)
	h := NewSwipeHandler(svc)

	resp := performSwipeRequest(t, h, 55, "RIGHT_SWIPE", true)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("unexpected status: got %d want %d", resp.Code, http.StatusForbidden)
	}

	var payload struct {
		Code  string `json:"code"`
		Limit int    `json:"limit"`
		Scope string `json:"scope"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Code != "QUOTA_EXCEEDED" || payload.Limit != 3 || payload.Scope != "lifetime" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestSwipeHandlerInvalidTarget(t *testing.T) {
	svc := newSwipeService(&interestStoreStub{}, &matchStoreStub{}, &profileStoreStub{missing: true}, &quotaPolicyStub{})
	h := NewSwipeHandler(svc)

	resp := performSwipeRequest(t, h, 55, "RIGHT_SWIPE", true)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d want %d", resp.Code, http.StatusBadRequest)
	}

	var payload struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Code != "INVALID_TARGET" {
		t.Fatalf("unexpected error code: %q", payload.Code)
	}
}

func TestSwipeHandlerUnsupportedAction(t *testing.T) {
	svc := newSwipeService(&interestStoreStub{}, &matchStoreStub{}, &profileStoreStub{}, &quotaPolicyStub{})
	h := NewSwipeHandler(svc)

	resp := performSwipeRequest(t, h, 55, "SUPERLIKE", true)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d want %d", resp.Code, http.StatusBadRequest)
	}
}

func TestSwipeHandlerRequiresAuth(t *testing.T) {
	svc := newSwipeService(&interestStoreStub{}, &matchStoreStub{}, &profileStoreStub{}, &quotaPolicyStub{})
	h := NewSwipeHandler(svc)

	resp := performSwipeRequest(t, h, 55, "RIGHT_SWIPE", false)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d want %d", resp.Code, http.StatusUnauthorized)
	}
}

func performSwipeRequest(t *testing.T, h *SwipeHandler, targetID int64, action string, withIdentity bool) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"target_id": targetID,
		"action":    action,
	})
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/swipe", bytes.NewReader(body))
	if withIdentity {
		req = req.WithContext(authsvc.WithIdentity(context.Background(), authsvc.Identity{
			UserID: 101,
			Tier:   enums.TierStandard,
		}))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}
