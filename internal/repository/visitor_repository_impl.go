package repository

import (
	"context"
	"encoding/json"
	"errors"

	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

type visitorRepository struct {
	client *redis.Client
}

func NewVisitorRepository(client *redis.Client) domainRepo.VisitorRepository {
	return &visitorRepository{client: client}
}

func (r *visitorRepository) PushNotice(ctx context.Context, visitorID string, notice entity.Notice) error {
	payload, err := json.Marshal(notice)
	if err != nil {
		return err
	}

	key := noticeKey(visitorID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, payload)
		pipe.Expire(ctx, key, noticeTTL)
		return nil
	})
	return err
}

// PopNotices drains the queue; each notice is delivered once.
func (r *visitorRepository) PopNotices(ctx context.Context, visitorID string) ([]entity.Notice, error) {
	key := noticeKey(visitorID)

	var items *redis.StringSliceCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		items = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, err
	}

	notices := make([]entity.Notice, 0, len(items.Val()))
	for _, raw := range items.Val() {
		var notice entity.Notice
		if err := json.Unmarshal([]byte(raw), &notice); err != nil {
			continue
		}
		notices = append(notices, notice)
	}
	return notices, nil
}

func (r *visitorRepository) BeginNavigation(ctx context.Context, visitorID string) (int64, error) {
	key := navigationKey(visitorID)

	var seq *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		seq = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, visitorStateTTL)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return seq.Val(), nil
}

func (r *visitorRepository) IsLatestNavigation(ctx context.Context, visitorID string, seq int64) (bool, error) {
	current, err := r.client.Get(ctx, navigationKey(visitorID)).Int64()
	if errors.Is(err, redis.Nil) {
		return seq == 0, nil
	}
	if err != nil {
		return false, err
	}
	return current == seq, nil
}
