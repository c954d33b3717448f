package handlers

import (
	"errors"
	"net/http"

	authsvc "github.com/kushalkambar5/nitkknot/internal/services/auth"
	userssvc "github.com/kushalkambar5/nitkknot/internal/services/users"
	"github.com/kushalkambar5/nitkknot/internal/transport/http/dto"
	httperrors "github.com/kushalkambar5/nitkknot/internal/transport/http/errors"
)

type TierHandler struct {
	service *userssvc.Service
}

func NewTierHandler(service *userssvc.Service) *TierHandler {
	return &TierHandler{service: service}
}

func (h *TierHandler) HandleUpgrade(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "TIER_SERVICE_UNAVAILABLE", "tier service is unavailable")
		return
	}

	tier, err := h.service.UpgradeTier(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, userssvc.ErrUserNotFound) {
			writeUnauthorized(w, "UNAUTHORIZED", "profile not found")
			return
		}
		writeInternal(w, "INTERNAL_ERROR", "failed to upgrade tier")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.TierUpgradeResponse{
		OK:   true,
		Tier: string(tier),
	})
}
