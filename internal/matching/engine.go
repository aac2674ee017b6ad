package matching

import (
	"context"
	"sort"
	"time"

	apperrors "matching-engine/internal/common/errors"
	"matching-engine/internal/common/logger"
	"matching-engine/internal/common/metrics"
	"matching-engine/internal/models"
	"matching-engine/internal/survey"
)

// UserRecord is a profile paired with its survey answers, as loaded from
// storage. Answers is nil when the user has not submitted a survey.
type UserRecord struct {
	Profile *models.Profile
	Answers survey.AnswerSet
}

// Store is the storage collaborator contract. Implementations own retries and
// upsert serialization; the engine treats every method as a single blocking
// call.
type Store interface {
	// LoadUserWithProfileAndSurvey returns the record for one user. A missing
	// user yields a PROFILE_NOT_FOUND error; a user without a completed
	// profile or survey yields a record with the corresponding field nil.
	LoadUserWithProfileAndSurvey(ctx context.Context, userID string) (*UserRecord, error)

	// LoadEligibleCandidatePool returns every user with a complete profile,
	// a submitted survey, and stopMatching=false, excluding the given user.
	LoadEligibleCandidatePool(ctx context.Context, excludingUserID string) ([]UserRecord, error)

	// UpsertMatch writes or overwrites the match row keyed (sender, receiver).
	// Must be idempotent; last write wins.
	UpsertMatch(ctx context.Context, senderID, receiverID string, score float64, breakdown models.ScoreBreakdown) error

	// GetPersonalMinimumScore returns a user's personal minimum acceptable
	// score, ok=false when never set.
	GetPersonalMinimumScore(ctx context.Context, userID string) (float64, bool, error)

	// GetActiveConversationCount returns the number of open conversations a
	// user participates in. Used by the accept gate, not by scoring.
	GetActiveConversationCount(ctx context.Context, userID string) (int, error)
}

// Settings is the runtime-settings collaborator: process-wide values that
// admins may change without a deploy. Read-only to the engine.
type Settings interface {
	GlobalMinimumScore(ctx context.Context) (float64, error)
	MaxActiveConversations(ctx context.Context) (int, error)
}

// Engine drives the matching pipeline: load, hard-filter, score, admit, rank.
type Engine struct {
	store    Store
	settings Settings
	weights  Weights
	logger   logger.Logger
}

func NewEngine(store Store, settings Settings, weights Weights, log logger.Logger) *Engine {
	return &Engine{
		store:    store,
		settings: settings,
		weights:  weights,
		logger:   log.WithFields(map[string]interface{}{"component": "matching-engine"}),
	}
}

// FindMatches computes the ranked matches for a user.
//
// Returns an INCOMPLETE_PROFILE error when the requester is missing either
// their profile or their survey. limit <= 0 falls back to 10.
func (e *Engine) FindMatches(ctx context.Context, userID string, limit int) ([]models.MatchResult, error) {
	started := time.Now()
	defer func() {
		metrics.ComputeDuration.Observe(time.Since(started).Seconds())
	}()

	requester, rules, err := e.loadRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	threshold, err := e.effectiveThreshold(ctx, userID, rules)
	if err != nil {
		return nil, err
	}

	pool, err := e.store.LoadEligibleCandidatePool(ctx, userID)
	if err != nil {
		return nil, err
	}
	metrics.CandidatesScanned.Add(float64(len(pool)))

	var results []models.MatchResult
	now := time.Now()
	for _, candidate := range pool {
		if candidate.Profile == nil || candidate.Answers == nil {
			continue
		}
		if !PassesHardFilters(requester.Profile, candidate.Profile) {
			metrics.CandidatesFiltered.WithLabelValues(metrics.StageHardFilter).Inc()
			continue
		}

		score := ComputeCompatibilityScore(e.weights, requester.Answers, candidate.Answers)
		metrics.CandidatesScored.Inc()

		if !rules.Admits(score.Total, threshold) {
			metrics.CandidatesFiltered.WithLabelValues(metrics.StageThreshold).Inc()
			continue
		}

		results = append(results, models.MatchResult{
			UserID:            candidate.Profile.UserID,
			Nickname:          candidate.Profile.Nickname,
			Age:               candidate.Profile.Age(now),
			JobCategory:       candidate.Profile.JobCategory,
			ResidenceProvince: candidate.Profile.Province(),
			Score:             score,
		})
	}

	// rank by total descending; ties break on candidate id so identical
	// inputs always produce identical output
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score.Total != results[j].Score.Total {
			return results[i].Score.Total > results[j].Score.Total
		}
		return results[i].UserID < results[j].UserID
	})

	if limit <= 0 {
		limit = 10
	}
	if len(results) > limit {
		results = results[:limit]
	}

	e.logger.Info("matches computed", map[string]interface{}{
		"userId":     userID,
		"poolSize":   len(pool),
		"matchCount": len(results),
		"threshold":  threshold,
	})

	return results, nil
}

// SaveMatchResults persists computed results as PENDING match rows keyed
// (sender, receiver). The admission filter is re-applied so a stale or
// tampered results list can never write a match the pipeline would exclude.
// Safe to call repeatedly with the same inputs.
func (e *Engine) SaveMatchResults(ctx context.Context, userID string, results []models.MatchResult) error {
	rules, err := e.loadRules(ctx)
	if err != nil {
		return err
	}
	threshold, err := e.effectiveThreshold(ctx, userID, rules)
	if err != nil {
		return err
	}

	for _, result := range results {
		if !rules.Admits(result.Score.Total, threshold) {
			continue
		}
		if err := e.store.UpsertMatch(ctx, userID, result.UserID, result.Score.Total, result.Score); err != nil {
			return err
		}
		metrics.MatchesPersisted.Inc()
	}

	return nil
}

// CanAcceptMatch reports whether a match may transition to ACCEPTED: the
// score must strictly exceed both parties' effective thresholds, clear the
// global floor, and both parties must be under conversation capacity.
func (e *Engine) CanAcceptMatch(ctx context.Context, match *models.Match) (bool, error) {
	rules, err := e.loadRules(ctx)
	if err != nil {
		return false, err
	}
	if rules.IsGloballyBlocked(match.Score) {
		return false, nil
	}

	for _, party := range []string{match.SenderID, match.ReceiverID} {
		threshold, err := e.effectiveThreshold(ctx, party, rules)
		if err != nil {
			return false, err
		}
		if match.Score <= threshold {
			return false, nil
		}

		active, err := e.store.GetActiveConversationCount(ctx, party)
		if err != nil {
			return false, err
		}
		if !rules.HasChatCapacity(active) {
			return false, nil
		}
	}

	return true, nil
}

func (e *Engine) loadRequester(ctx context.Context, userID string) (*UserRecord, Rules, error) {
	rules, err := e.loadRules(ctx)
	if err != nil {
		return nil, Rules{}, err
	}

	record, err := e.store.LoadUserWithProfileAndSurvey(ctx, userID)
	if err != nil {
		return nil, Rules{}, err
	}
	if record.Profile == nil || record.Answers == nil {
		return nil, Rules{}, apperrors.NewIncompleteProfileError(userID)
	}
	return record, rules, nil
}

func (e *Engine) loadRules(ctx context.Context) (Rules, error) {
	globalMin, err := e.settings.GlobalMinimumScore(ctx)
	if err != nil {
		return Rules{}, err
	}
	maxChats, err := e.settings.MaxActiveConversations(ctx)
	if err != nil {
		return Rules{}, err
	}
	return Rules{GlobalMinScore: globalMin, MaxActiveChats: maxChats}, nil
}

func (e *Engine) effectiveThreshold(ctx context.Context, userID string, rules Rules) (float64, error) {
	personal, ok, err := e.store.GetPersonalMinimumScore(ctx, userID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return rules.EffectiveThreshold(nil), nil
	}
	return rules.EffectiveThreshold(&personal), nil
}
