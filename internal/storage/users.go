package storage

import (
	"context"

	apperrors "matching-engine/internal/common/errors"
)

// ListActiveUserIDs returns every user eligible to have matches recomputed:
// complete profile, survey submitted, matching enabled. Used by the periodic
// sweep, not by the core pipeline.
func (s *MatchStore) ListActiveUserIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.user_id
		FROM profiles p
		JOIN survey_responses s ON s.user_id = p.user_id
		WHERE p.profile_complete AND NOT p.stop_matching
		ORDER BY p.user_id`)
	if err != nil {
		return nil, apperrors.NewDatabaseQueryError("list active users", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.NewDatabaseQueryError("scan active user id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDatabaseQueryError("iterate active users", err)
	}
	return ids, nil
}
