package storage

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"

	"matching-engine/internal/common/config"
	apperrors "matching-engine/internal/common/errors"
)

// Settings keys written by the admin console.
const (
	settingsKeyGlobalMinScore = "settings:global_min_score"
	settingsKeyMaxActiveChats = "settings:max_active_chats"
)

// RedisSettings reads runtime settings from Redis, falling back to the
// configured defaults when a key has never been set. A Redis read failure is
// an error: computing matches against a stale floor is worse than failing
// the request.
type RedisSettings struct {
	client   *redis.Client
	defaults config.MatchingConfig
}

func NewRedisSettings(client *redis.Client, defaults config.MatchingConfig) *RedisSettings {
	return &RedisSettings{client: client, defaults: defaults}
}

// GlobalMinimumScore returns the process-wide score floor.
func (s *RedisSettings) GlobalMinimumScore(ctx context.Context) (float64, error) {
	val, err := s.client.Get(ctx, settingsKeyGlobalMinScore).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return s.defaults.GlobalMinScore, nil
		}
		return 0, apperrors.NewSettingsUnavailableError(settingsKeyGlobalMinScore, err)
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, apperrors.NewSettingsUnavailableError(settingsKeyGlobalMinScore, err)
	}
	return parsed, nil
}

// MaxActiveConversations returns the per-user open conversation cap.
func (s *RedisSettings) MaxActiveConversations(ctx context.Context) (int, error) {
	val, err := s.client.Get(ctx, settingsKeyMaxActiveChats).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return s.defaults.MaxActiveChats, nil
		}
		return 0, apperrors.NewSettingsUnavailableError(settingsKeyMaxActiveChats, err)
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, apperrors.NewSettingsUnavailableError(settingsKeyMaxActiveChats, err)
	}
	return parsed, nil
}
