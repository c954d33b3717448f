package handlers

import (
	"net/http"

	authsvc "github.com/kushalkambar5/nitkknot/internal/services/auth"
	historysvc "github.com/kushalkambar5/nitkknot/internal/services/history"
	"github.com/kushalkambar5/nitkknot/internal/transport/http/dto"
	httperrors "github.com/kushalkambar5/nitkknot/internal/transport/http/errors"
)

type HistoryHandler struct {
	service *historysvc.Service
}

func NewHistoryHandler(service *historysvc.Service) *HistoryHandler {
	return &HistoryHandler{service: service}
}

func (h *HistoryHandler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "HISTORY_SERVICE_UNAVAILABLE", "history service is unavailable")
		return
	}

	entries, err := h.service.List(r.Context(), identity.UserID)
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to load history")
		return
	}

	items := make([]dto.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		items = append(items, dto.HistoryEntry{
			TargetUserID: entry.TargetUserID,
			Status:       string(entry.Status),
		})
	}

	httperrors.Write(w, http.StatusOK, dto.HistoryResponse{Entries: items})
}
