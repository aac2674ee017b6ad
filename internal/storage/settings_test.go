package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matching-engine/internal/common/config"
	apperrors "matching-engine/internal/common/errors"
)

func newTestSettings(t *testing.T) (*RedisSettings, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	defaults := config.MatchingConfig{GlobalMinScore: 50, MaxActiveChats: 3}
	return NewRedisSettings(client, defaults), srv
}

func TestGlobalMinimumScoreDefault(t *testing.T) {
	settings, _ := newTestSettings(t)

	score, err := settings.GlobalMinimumScore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 50.0, score)
}

func TestGlobalMinimumScoreFromRedis(t *testing.T) {
	settings, srv := newTestSettings(t)
	srv.Set("settings:global_min_score", "62.5")

	score, err := settings.GlobalMinimumScore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 62.5, score)
}

func TestGlobalMinimumScoreBadValue(t *testing.T) {
	settings, srv := newTestSettings(t)
	srv.Set("settings:global_min_score", "not-a-number")

	_, err := settings.GlobalMinimumScore(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSettingsUnavailable))
}

func TestGlobalMinimumScoreBackendDown(t *testing.T) {
	settings, srv := newTestSettings(t)
	srv.Close()

	_, err := settings.GlobalMinimumScore(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSettingsUnavailable))
}

func TestMaxActiveConversationsDefault(t *testing.T) {
	settings, _ := newTestSettings(t)

	limit, err := settings.MaxActiveConversations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, limit)
}

func TestMaxActiveConversationsFromRedis(t *testing.T) {
	settings, srv := newTestSettings(t)
	srv.Set("settings:max_active_chats", "5")

	limit, err := settings.MaxActiveConversations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, limit)
}

func TestMaxActiveConversationsBadValue(t *testing.T) {
	settings, srv := newTestSettings(t)
	srv.Set("settings:max_active_chats", "many")

	_, err := settings.MaxActiveConversations(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSettingsUnavailable))
}
