package repository

import (
	"context"
	"encoding/json"
	"errors"

	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

type formStateRepository struct {
	client *redis.Client
}

func NewFormStateRepository(client *redis.Client) domainRepo.FormStateRepository {
	return &formStateRepository{client: client}
}

func (r *formStateRepository) AcquireSubmit(ctx context.Context, visitorID, formID string) (bool, error) {
	return r.client.SetNX(ctx, formKey(formLockKeyPrefix, visitorID, formID), 1, submitLockTTL).Result()
}

func (r *formStateRepository) ReleaseSubmit(ctx context.Context, visitorID, formID string) error {
	return r.client.Del(ctx, formKey(formLockKeyPrefix, visitorID, formID)).Err()
}

func (r *formStateRepository) SaveDraft(ctx context.Context, visitorID, formID string, draft interface{}) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, formKey(formDraftKeyPrefix, visitorID, formID), payload, formStateTTL).Err()
}

func (r *formStateRepository) LoadDraft(ctx context.Context, visitorID, formID string, draft interface{}) (bool, error) {
	raw, err := r.client.Get(ctx, formKey(formDraftKeyPrefix, visitorID, formID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, draft); err != nil {
		return false, err
	}
	return true, nil
}

func (r *formStateRepository) SaveAttachments(ctx context.Context, visitorID, formID string, files []entity.Attachment) error {
	if len(files) == 0 {
		return r.client.Del(ctx, formKey(formAttachmentsPrefix, visitorID, formID)).Err()
	}
	payload, err := json.Marshal(files)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, formKey(formAttachmentsPrefix, visitorID, formID), payload, formStateTTL).Err()
}

func (r *formStateRepository) LoadAttachments(ctx context.Context, visitorID, formID string) ([]entity.Attachment, error) {
	raw, err := r.client.Get(ctx, formKey(formAttachmentsPrefix, visitorID, formID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var files []entity.Attachment
	if err := json.Unmarshal(raw, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (r *formStateRepository) Clear(ctx context.Context, visitorID, formID string) error {
	return r.client.Del(ctx, formKey(formDraftKeyPrefix, visitorID, formID), formKey(formAttachmentsPrefix, visitorID, formID)).Err()
}
