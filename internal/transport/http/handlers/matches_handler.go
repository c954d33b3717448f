package handlers

import (
	"net/http"

	authsvc "github.com/kushalkambar5/nitkknot/internal/services/auth"
	matchessvc "github.com/kushalkambar5/nitkknot/internal/services/matches"
	"github.com/kushalkambar5/nitkknot/internal/transport/http/dto"
	httperrors "github.com/kushalkambar5/nitkknot/internal/transport/http/errors"
)

type MatchesHandler struct {
	service *matchessvc.Service
}

func NewMatchesHandler(service *matchessvc.Service) *MatchesHandler {
	return &MatchesHandler{service: service}
}

func (h *MatchesHandler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "MATCHES_SERVICE_UNAVAILABLE", "matches service is unavailable")
		return
	}

	limit := parseIntOrDefault(r.URL.Query().Get("limit"), 0)

	matches, err := h.service.List(r.Context(), identity.UserID, limit)
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to load matches")
		return
	}

	items := make([]dto.MatchItem, 0, len(matches))
	for _, m := range matches {
		items = append(items, dto.MatchItem{
			UserID:      m.UserID,
			DisplayName: m.DisplayName,
			Gender:      m.Gender,
			MatchedAt:   m.MatchedAt,
		})
	}

	httperrors.Write(w, http.StatusOK, dto.MatchesResponse{Matches: items})
}
