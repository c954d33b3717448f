package dto

type HistoryEntry struct {
	TargetUserID int64  `json:"target_user_id"`
	Status       string `json:"status"`
}

type HistoryResponse struct {
	Entries []HistoryEntry `json:"entries"`
}
