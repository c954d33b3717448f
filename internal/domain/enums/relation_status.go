package enums

// RelationStatus describes the viewer's relationship to another profile.
// When several apply to the same pair, the strongest one wins:
// matched over expressed interest over rejected.
type RelationStatus string

const (
	RelationRejected          RelationStatus = "rejected"
	RelationExpressedInterest RelationStatus = "expressed_interest"
	RelationMatched           RelationStatus = "matched"
)
