package handlers

import (
	"errors"
	"net/http"

	authsvc "github.com/kushalkambar5/nitkknot/internal/services/auth"
	swipesvc "github.com/kushalkambar5/nitkknot/internal/services/swipes"
	"github.com/kushalkambar5/nitkknot/internal/transport/http/dto"
	httperrors "github.com/kushalkambar5/nitkknot/internal/transport/http/errors"
)

type ReportHandler struct {
	service *swipesvc.Service
}

func NewReportHandler(service *swipesvc.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "REPORT_SERVICE_UNAVAILABLE", "report service is unavailable")
		return
	}

	var req dto.ReportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if req.TargetID <= 0 {
		writeBadRequest(w, "VALIDATION_ERROR", "target_id is required")
		return
	}

	if err := h.service.Report(r.Context(), identity.UserID, req.TargetID, req.Reason); err != nil {
		switch {
		case errors.Is(err, swipesvc.ErrInvalidTarget):
			writeBadRequest(w, "INVALID_TARGET", "target profile is invalid or unknown")
		case errors.Is(err, swipesvc.ErrEmptyReason):
			writeBadRequest(w, "VALIDATION_ERROR", "reason is required")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to record report")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, dto.ReportResponse{OK: true})
}
