package dto

import "time"

type FeedCandidate struct {
	UserID      int64     `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Gender      string    `json:"gender"`
	Verified    bool      `json:"verified"`
	JoinedAt    time.Time `json:"joined_at"`
}

type FeedResponse struct {
	Candidates []FeedCandidate `json:"candidates"`
}
