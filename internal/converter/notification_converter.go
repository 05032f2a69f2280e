package converter

import (
	"charity-care-portal/internal/delivery/dto"
	"charity-care-portal/internal/domain/entity"
)

func NotificationResponsesToEntities(resps []dto.NotificationResponse) []entity.Notification {
	notifications := make([]entity.Notification, 0, len(resps))
	for _, r := range resps {
		notifications = append(notifications, entity.Notification{
			ID:        r.ID,
			Type:      entity.NotificationType(r.Type),
			Title:     r.Title,
			Message:   r.Message,
			Read:      r.Read,
			CreatedAt: parseTime(r.CreatedAt),
		})
	}
	return notifications
}

func ChatMessagesToEntities(resps []dto.ChatMessageResponse) []entity.ChatMessage {
	messages := make([]entity.ChatMessage, 0, len(resps))
	for _, r := range resps {
		messages = append(messages, entity.ChatMessage{
			Role:      r.Role,
			Content:   r.Content,
			CreatedAt: r.CreatedAt,
		})
	}
	return messages
}
