package repository

import (
	"context"

	"charity-care-portal/internal/converter"
	"charity-care-portal/internal/delivery/dto"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/pkg/apiclient"
)

type notificationRepository struct {
	client *apiclient.Client
}

func NewNotificationRepository(client *apiclient.Client) domainRepo.NotificationRepository {
	return &notificationRepository{client: client}
}

func (r *notificationRepository) FindAll(ctx context.Context) ([]entity.Notification, error) {
	var resp []dto.NotificationResponse
	if err := r.client.Get(ctx, "/notifications", nil, &resp); err != nil {
		return nil, err
	}
	return converter.NotificationResponsesToEntities(resp), nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id string) error {
	return r.client.Patch(ctx, apiclient.Path("notifications", id, "read"), nil, nil)
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context) error {
	return r.client.Patch(ctx, "/notifications/read-all", nil, nil)
}

type chatbotRepository struct {
	client *apiclient.Client
}

func NewChatbotRepository(client *apiclient.Client) domainRepo.ChatbotRepository {
	return &chatbotRepository{client: client}
}

func (r *chatbotRepository) Send(ctx context.Context, chatSessionID, message string) (*entity.ChatMessage, error) {
	var resp dto.ChatResponse
	req := dto.ChatRequest{Message: message, SessionID: chatSessionID}
	if err := r.client.Post(ctx, "/chatbot/chat", req, &resp); err != nil {
		return nil, err
	}
	reply := converter.ChatMessagesToEntities([]dto.ChatMessageResponse{resp.Message})[0]
	return &reply, nil
}

func (r *chatbotRepository) History(ctx context.Context, chatSessionID string) ([]entity.ChatMessage, error) {
	var resp []dto.ChatMessageResponse
	if err := r.client.Get(ctx, apiclient.Path("chatbot", "history", chatSessionID), nil, &resp); err != nil {
		return nil, err
	}
	return converter.ChatMessagesToEntities(resp), nil
}
