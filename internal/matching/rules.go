package matching

// Rules holds the process-wide admission thresholds, read once per pipeline
// run from the settings collaborator.
type Rules struct {
	GlobalMinScore float64
	MaxActiveChats int
}

// IsGloballyBlocked reports whether a score is at or below the global floor.
// Blocked scores are never surfaced or persisted, regardless of personal
// thresholds.
func (r Rules) IsGloballyBlocked(score float64) bool {
	return score <= r.GlobalMinScore
}

// EffectiveThreshold returns the higher of the global floor and a user's
// personal minimum. personal is nil when the user never set one.
func (r Rules) EffectiveThreshold(personal *float64) float64 {
	if personal != nil && *personal > r.GlobalMinScore {
		return *personal
	}
	return r.GlobalMinScore
}

// Admits reports whether a scored candidate clears both the global floor and
// the requester's effective threshold. FindMatches and SaveMatchResults apply
// the same predicate so persistence can never write a match that computation
// would have excluded.
func (r Rules) Admits(score, effectiveThreshold float64) bool {
	if r.IsGloballyBlocked(score) {
		return false
	}
	return score >= effectiveThreshold
}

// HasChatCapacity reports whether a user with the given active conversation
// count may open another conversation.
func (r Rules) HasChatCapacity(activeCount int) bool {
	return activeCount < r.MaxActiveChats
}
