package enums

import "strings"

type Tier string

const (
	TierStandard Tier = "standard"
	TierElevated Tier = "elevated"
)

func ParseTier(raw string) (Tier, bool) {
	switch Tier(strings.ToLower(strings.TrimSpace(raw))) {
	case TierStandard:
		return TierStandard, true
	case TierElevated:
		return TierElevated, true
	default:
		return "", false
	}
}
