package handlers

import (
	"net/http"

	authsvc "github.com/kushalkambar5/nitkknot/internal/services/auth"
	likessvc "github.com/kushalkambar5/nitkknot/internal/services/likes"
	"github.com/kushalkambar5/nitkknot/internal/transport/http/dto"
	httperrors "github.com/kushalkambar5/nitkknot/internal/transport/http/errors"
)

type LikesHandler struct {
	service *likessvc.Service
}

func NewLikesHandler(service *likessvc.Service) *LikesHandler {
	return &LikesHandler{service: service}
}

func (h *LikesHandler) HandleIncoming(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "LIKES_SERVICE_UNAVAILABLE", "likes service is unavailable")
		return
	}

	limit := parseIntOrDefault(r.URL.Query().Get("limit"), 0)

	result, err := h.service.Incoming(r.Context(), identity.UserID, limit)
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to load incoming likes")
		return
	}

	items := make([]dto.AdmirerItem, 0, len(result.Admirers))
	for _, a := range result.Admirers {
		items = append(items, dto.AdmirerItem{
			UserID:      a.UserID,
			DisplayName: a.DisplayName,
			Gender:      a.Gender,
			ViaLike:     a.ViaLike,
			LikedAt:     a.LikedAt,
		})
	}

	httperrors.Write(w, http.StatusOK, dto.IncomingLikesResponse{
		Admirers: items,
		Total:    result.Total,
	})
}
