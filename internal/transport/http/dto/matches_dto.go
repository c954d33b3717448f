package dto

import "time"

type MatchItem struct {
	UserID      int64     `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Gender      string    `json:"gender"`
	MatchedAt   time.Time `json:"matched_at"`
}

type MatchesResponse struct {
	Matches []MatchItem `json:"matches"`
}
