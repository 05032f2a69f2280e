package repository

import (
	"context"

	"charity-care-portal/internal/domain/entity"
)

type ChatbotRepository interface {
	Send(ctx context.Context, chatSessionID, message string) (*entity.ChatMessage, error)
	History(ctx context.Context, chatSessionID string) ([]entity.ChatMessage, error)
}
