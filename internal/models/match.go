package models

import "time"

type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "PENDING"
	MatchStatusAccepted MatchStatus = "ACCEPTED"
	MatchStatusRejected MatchStatus = "REJECTED"
	MatchStatusExpired  MatchStatus = "EXPIRED"
)

// ScoreBreakdown is the output of the compatibility scorer. Each sub-score is
// bounded by its category's point budget; the total is bounded 0-100.
type ScoreBreakdown struct {
	SurveySimilarity float64 `json:"surveySimilarity"` // 0-45
	Lifestyle        float64 `json:"lifestyle"`        // 0-25
	ValueAlignment   float64 `json:"valueAlignment"`   // 0-20
	Personality      float64 `json:"personality"`      // 0-10
	Total            float64 `json:"total"`            // 0-100
}

// MatchResult is one ranked candidate from a matching computation. It lives
// for a single pipeline run; persisting it produces a Match row.
type MatchResult struct {
	UserID            string         `json:"userId"`
	Nickname          string         `json:"nickname"`
	Age               int            `json:"age"`
	JobCategory       string         `json:"jobCategory"`
	ResidenceProvince string         `json:"residenceProvince"`
	Score             ScoreBreakdown `json:"score"`
}

// Match is the persisted record, keyed by (sender, receiver).
type Match struct {
	ID         string         `json:"id"`
	SenderID   string         `json:"senderId"`
	ReceiverID string         `json:"receiverId"`
	Score      float64        `json:"score"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
	Status     MatchStatus    `json:"status"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
