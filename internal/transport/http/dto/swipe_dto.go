package dto

type SwipeRequest struct {
	TargetID int64  `json:"target_id"`
	Action   string `json:"action"`
}

type SwipeResponse struct {
	OK               bool `json:"ok"`
	Matched          bool `json:"matched"`
	AlreadyExpressed bool `json:"already_expressed,omitempty"`
}
