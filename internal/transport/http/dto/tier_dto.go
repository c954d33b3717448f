package dto

type TierUpgradeResponse struct {
	OK   bool   `json:"ok"`
	Tier string `json:"tier"`
}
