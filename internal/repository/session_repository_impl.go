package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

type sessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) domainRepo.SessionRepository {
	return &sessionRepository{client: client, ttl: ttl}
}

func (r *sessionRepository) Get(ctx context.Context, visitorID string) (*entity.Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(visitorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Login writes the session and drops the previous identity's notifications
// in a single MULTI so readers never see one without the other.
func (r *sessionRepository) Login(ctx context.Context, visitorID string, session *entity.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(visitorID), payload, r.ttl)
		pipe.Del(ctx, notificationKey(visitorID), unreadKey(visitorID))
		return nil
	})
	return err
}

func (r *sessionRepository) Logout(ctx context.Context, visitorID string) error {
	return r.client.Del(ctx, sessionKey(visitorID)).Err()
}
