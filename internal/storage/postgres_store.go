// Package storage implements the engine's collaborator contracts on
// PostgreSQL (profiles, surveys, matches, chat threads) and Redis (runtime
// settings).
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	apperrors "matching-engine/internal/common/errors"
	"matching-engine/internal/common/logger"
	"matching-engine/internal/matching"
	"matching-engine/internal/models"
	"matching-engine/internal/survey"
)

// MatchStore implements matching.Store on PostgreSQL.
type MatchStore struct {
	db     *sql.DB
	logger logger.Logger
}

func NewMatchStore(db *sql.DB, log logger.Logger) *MatchStore {
	return &MatchStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "match-store"}),
	}
}

const userRecordQuery = `
	SELECT p.user_id, p.nickname, p.gender, p.date_of_birth, p.job_category,
	       p.religion, p.drinking, p.smoking, p.residence_location,
	       p.stop_matching, p.min_match_score, p.dealbreakers, s.answers
	FROM profiles p
	LEFT JOIN survey_responses s ON s.user_id = p.user_id
	WHERE p.user_id = $1`

// LoadUserWithProfileAndSurvey loads one user's profile and survey answers.
// The survey blob is validated and coerced here, at the storage boundary, so
// the scorer only ever sees typed answers.
func (s *MatchStore) LoadUserWithProfileAndSurvey(ctx context.Context, userID string) (*matching.UserRecord, error) {
	row := s.db.QueryRowContext(ctx, userRecordQuery, userID)
	record, err := s.scanUserRecord(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewProfileNotFoundError(userID)
		}
		return nil, apperrors.NewDatabaseQueryError("load user record", err)
	}
	return record, nil
}

const candidatePoolQuery = `
	SELECT p.user_id, p.nickname, p.gender, p.date_of_birth, p.job_category,
	       p.religion, p.drinking, p.smoking, p.residence_location,
	       p.stop_matching, p.min_match_score, p.dealbreakers, s.answers
	FROM profiles p
	JOIN survey_responses s ON s.user_id = p.user_id
	WHERE p.user_id <> $1
	  AND p.profile_complete
	  AND NOT p.stop_matching
	ORDER BY p.user_id`

// LoadEligibleCandidatePool returns every candidate with a complete profile,
// a submitted survey, and matching enabled. The pool is fully materialized;
// hard filtering happens in the engine.
func (s *MatchStore) LoadEligibleCandidatePool(ctx context.Context, excludingUserID string) ([]matching.UserRecord, error) {
	rows, err := s.db.QueryContext(ctx, candidatePoolQuery, excludingUserID)
	if err != nil {
		return nil, apperrors.NewDatabaseQueryError("load candidate pool", err)
	}
	defer rows.Close()

	var pool []matching.UserRecord
	for rows.Next() {
		record, err := s.scanUserRecord(rows.Scan)
		if err != nil {
			return nil, apperrors.NewDatabaseQueryError("scan candidate", err)
		}
		pool = append(pool, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDatabaseQueryError("iterate candidate pool", err)
	}
	return pool, nil
}

func (s *MatchStore) scanUserRecord(scan func(dest ...interface{}) error) (*matching.UserRecord, error) {
	var (
		profile      models.Profile
		minScore     sql.NullFloat64
		dealbreakers pq.StringArray
		rawAnswers   []byte
	)
	err := scan(
		&profile.UserID, &profile.Nickname, &profile.Gender, &profile.DateOfBirth,
		&profile.JobCategory, &profile.Religion, &profile.Drinking, &profile.Smoking,
		&profile.ResidenceLocation, &profile.StopMatching, &minScore,
		&dealbreakers, &rawAnswers,
	)
	if err != nil {
		return nil, err
	}

	if minScore.Valid {
		profile.MinMatchScore = &minScore.Float64
	}
	profile.Dealbreakers = []string(dealbreakers)

	record := &matching.UserRecord{Profile: &profile}
	if rawAnswers != nil {
		answers, rejected, err := survey.ParseAnswerSet(rawAnswers)
		if err != nil {
			// whole blob unusable: treat the survey as not submitted
			s.logger.WithError(apperrors.NewSurveyMalformedError(profile.UserID, err)).
				Warn("survey blob unparseable, treating as missing", map[string]interface{}{
					"userId": profile.UserID,
				})
			return record, nil
		}
		if len(rejected) > 0 {
			s.logger.Debug("skipped malformed survey answers", map[string]interface{}{
				"userId":    profile.UserID,
				"questions": rejected,
			})
		}
		record.Answers = answers
	}
	return record, nil
}

const upsertMatchQuery = `
	INSERT INTO matches (id, sender_id, receiver_id, score, breakdown, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	ON CONFLICT (sender_id, receiver_id)
	DO UPDATE SET score = EXCLUDED.score,
	              breakdown = EXCLUDED.breakdown,
	              updated_at = EXCLUDED.updated_at`

// UpsertMatch writes the match row keyed (sender, receiver). Calling it again
// with the same pair overwrites score and breakdown; the row count never
// grows. Concurrent upserts for the same pair serialize on the unique
// constraint, last write wins.
func (s *MatchStore) UpsertMatch(ctx context.Context, senderID, receiverID string, score float64, breakdown models.ScoreBreakdown) error {
	blob, err := json.Marshal(breakdown)
	if err != nil {
		return apperrors.NewMatchPersistError(senderID, receiverID, err)
	}

	_, err = s.db.ExecContext(ctx, upsertMatchQuery,
		uuid.NewString(), senderID, receiverID, score, blob,
		string(models.MatchStatusPending), time.Now().UTC(),
	)
	if err != nil {
		return apperrors.NewMatchPersistError(senderID, receiverID, err)
	}
	return nil
}

// GetPersonalMinimumScore returns the user's personal minimum acceptable
// score, ok=false when the user never set one.
func (s *MatchStore) GetPersonalMinimumScore(ctx context.Context, userID string) (float64, bool, error) {
	var minScore sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT min_match_score FROM profiles WHERE user_id = $1`, userID,
	).Scan(&minScore)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, apperrors.NewProfileNotFoundError(userID)
		}
		return 0, false, apperrors.NewDatabaseQueryError("load personal minimum score", err)
	}
	if !minScore.Valid {
		return 0, false, nil
	}
	return minScore.Float64, true, nil
}

// GetActiveConversationCount returns the number of open chat threads the user
// participates in.
func (s *MatchStore) GetActiveConversationCount(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM chat_threads
		 WHERE status = 'OPEN' AND (user_a_id = $1 OR user_b_id = $1)`, userID,
	).Scan(&count)
	if err != nil {
		return 0, apperrors.NewDatabaseQueryError("count active conversations", err)
	}
	return count, nil
}
