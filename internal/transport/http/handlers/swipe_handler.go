package handlers

import (
	"errors"
	"fmt"
	"net/http"

	authsvc "github.com/kushalkambar5/nitkknot/internal/services/auth"
	quotasvc "github.com/kushalkambar5/nitkknot/internal/services/quota"
	swipesvc "github.com/kushalkambar5/nitkknot/internal/services/swipes"
	"github.com/kushalkambar5/nitkknot/internal/transport/http/dto"
	httperrors "github.com/kushalkambar5/nitkknot/internal/transport/http/errors"
)

type SwipeHandler struct {
	service *swipesvc.Service
}

func NewSwipeHandler(service *swipesvc.Service) *SwipeHandler {
	return &SwipeHandler{service: service}
}

func (h *SwipeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "SWIPE_SERVICE_UNAVAILABLE", "swipe service is unavailable")
		return
	}

	var req dto.SwipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if req.TargetID <= 0 {
		writeBadRequest(w, "VALIDATION_ERROR", "target_id is required")
		return
	}

	action, err := swipesvc.NormalizeAction(req.Action)
	if err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "unsupported action")
		return
	}

	if action == swipesvc.ActionPass {
		if err := h.service.Reject(r.Context(), identity.UserID, req.TargetID); err != nil {
			writeSwipeError(w, err)
			return
		}
		httperrors.Write(w, http.StatusOK, dto.SwipeResponse{OK: true})
		return
	}

	result, err := h.service.ExpressInterest(
		r.Context(),
		identity.UserID,
		req.TargetID,
		identity.Tier,
		action == swipesvc.ActionLike,
	)
	if err != nil {
		writeSwipeError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.SwipeResponse{
		OK:               true,
		Matched:          result.Matched,
		AlreadyExpressed: result.AlreadyExpressed,
	})
}

func writeSwipeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, swipesvc.ErrInvalidTarget):
		writeBadRequest(w, "INVALID_TARGET", "target profile is invalid or unknown")
	case errors.Is(err, swipesvc.ErrUnsupportedAction):
		writeBadRequest(w, "VALIDATION_ERROR", "unsupported action")
	default:
		if le, ok := quotasvc.IsLimitError(err); ok {
			httperrors.Write(w, http.StatusForbidden, httperrors.QuotaError{
				Code:    "QUOTA_EXCEEDED",
				Message: fmt.Sprintf("interest quota of %d exceeded", le.Limit),
				Limit:   le.Limit,
				Scope:   le.Scope,
			})
			return
		}
		writeInternal(w, "INTERNAL_ERROR", "failed to process swipe")
	}
}
