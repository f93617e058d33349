package huntwindow

// StandRef is the minimal view of a generated stand the orchestrator
// hands in for priority coupling, independent of the points package's
// own OptimizedPoint representation.
type StandRef struct {
	MatchKey       string
	Confidence0To99 float64
}

// WindCredibility is the metadata block attached to a stand whose
// confidence was boosted by a hunt-window match.
type WindCredibility struct {
	MatchedProfileID string  `json:"matched_profile_id"`
	Alignment0To1    float64 `json:"alignment_0_1"`
	PriorityBoost    float64 `json:"priority_boost"`
}

// CoupleResult is the outcome of applying a hunt-window's priority
// boost to one stand.
type CoupleResult struct {
	NewConfidence0To99 float64
	Tag                string
	Credibility        WindCredibility
}

// ApplyPriorityBoost applies status's priority boost to stand's
// confidence when stand.MatchKey equals profileMatchKey, capping the
// result at 99.
func ApplyPriorityBoost(stand StandRef, profileMatchKey string, status StandWindStatus) (CoupleResult, bool) {
	if stand.MatchKey == "" || stand.MatchKey != profileMatchKey {
		return CoupleResult{}, false
	}
	boosted := stand.Confidence0To99 + status.PriorityBoost
	if boosted > 99 {
		boosted = 99
	}
	return CoupleResult{
		NewConfidence0To99: boosted,
		Tag:                "hunt_window_priority",
		Credibility: WindCredibility{
			MatchedProfileID: status.ProfileID,
			Alignment0To1:    status.Alignment0To1,
			PriorityBoost:    status.PriorityBoost,
		},
	}, true
}
