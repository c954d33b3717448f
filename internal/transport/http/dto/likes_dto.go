package dto

import "time"

type AdmirerItem struct {
	UserID      int64     `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Gender      string    `json:"gender"`
	ViaLike     bool      `json:"via_like"`
	LikedAt     time.Time `json:"liked_at"`
}

type IncomingLikesResponse struct {
	Admirers []AdmirerItem `json:"admirers"`
	Total    int           `json:"total"`
}
