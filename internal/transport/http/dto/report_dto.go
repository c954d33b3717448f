package dto

type ReportRequest struct {
	TargetID int64  `json:"target_id"`
	Reason   string `json:"reason"`
}

type ReportResponse struct {
	OK bool `json:"ok"`
}
