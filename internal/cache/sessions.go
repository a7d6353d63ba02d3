package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/expgenwoo218/aibuup24/internal/interview"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionStore keeps interview sessions between wizard turns. Sessions are
// transient by design: only their output (the published post) is durable, so
// a TTL expiry simply abandons the interview.
type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

func sessionKey(id uuid.UUID) string {
	return "chat:session:" + id.String()
}

func (s *SessionStore) Save(ctx context.Context, sess *interview.Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionKey(sess.ID), b, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id uuid.UUID) (*interview.Session, error) {
	b, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: session %s", interview.ErrNotFound, id)
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	var sess interview.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.rdb.Del(ctx, sessionKey(id)).Err()
}
