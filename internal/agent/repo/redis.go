package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/autoparts-agent/server/internal/agent/model"
	errx "github.com/autoparts-agent/server/internal/core/error"
	logx "github.com/autoparts-agent/server/pkg/logger"
)

// RedisSessionRepository persists dialogue sessions in Redis as JSON with a
// TTL refreshed on every save.
type RedisSessionRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisSessionRepository(rdb redis.Cmdable, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{rdb: rdb, ttl: ttl}
}

func (r *RedisSessionRepository) sessionKey(conversationID string) string {
	return fmt.Sprintf("session:%s:state", conversationID)
}

func (r *RedisSessionRepository) Load(ctx context.Context, conversationID string) (*model.Session, error) {
	key := r.sessionKey(conversationID)

	raw, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load session from redis")
		return nil, errx.WrapRedis(err)
	}

	var s model.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		logx.Error().Err(err).Str("conversationID", conversationID).Msg("failed to unmarshal session")
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &s, nil
}

func (r *RedisSessionRepository) Save(ctx context.Context, session *model.Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		logx.Error().Err(err).Str("conversationID", session.ConversationID).Msg("failed to marshal session")
		return fmt.Errorf("marshal session: %w", err)
	}
	key := r.sessionKey(session.ConversationID)

	if err := r.rdb.Set(ctx, key, b, r.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to save session to redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, conversationID string) error {
	key := r.sessionKey(conversationID)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete session from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

var _ model.SessionRepository = (*RedisSessionRepository)(nil)
