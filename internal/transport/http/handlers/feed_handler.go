package handlers

import (
	"errors"
	"net/http"

	authsvc "github.com/kushalkambar5/nitkknot/internal/services/auth"
	feedsvc "github.com/kushalkambar5/nitkknot/internal/services/feed"
	"github.com/kushalkambar5/nitkknot/internal/transport/http/dto"
	httperrors "github.com/kushalkambar5/nitkknot/internal/transport/http/errors"
)

type FeedHandler struct {
	service *feedsvc.Service
}

func NewFeedHandler(service *feedsvc.Service) *FeedHandler {
	return &FeedHandler{service: service}
}

func (h *FeedHandler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "FEED_SERVICE_UNAVAILABLE", "feed service is unavailable")
		return
	}

	limit := parseIntOrDefault(r.URL.Query().Get("limit"), 0)

	candidates, err := h.service.NextCandidates(r.Context(), identity.UserID, limit)
	if err != nil {
		if errors.Is(err, feedsvc.ErrViewerNotFound) {
			writeUnauthorized(w, "UNAUTHORIZED", "viewer profile not found")
			return
		}
		writeInternal(w, "INTERNAL_ERROR", "failed to load feed")
		return
	}

	items := make([]dto.FeedCandidate, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, dto.FeedCandidate{
			UserID:      c.UserID,
			DisplayName: c.DisplayName,
			Gender:      c.Gender,
			Verified:    c.Verified,
			JoinedAt:    c.JoinedAt,
		})
	}

	httperrors.Write(w, http.StatusOK, dto.FeedResponse{Candidates: items})
}
