package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"charity-care-portal/internal/delivery/form"
	"charity-care-portal/internal/delivery/http/middleware"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/pkg/validator"
)

type ChatbotUsecase interface {
	History(ctx context.Context) ([]entity.ChatMessage, error)
	Send(ctx context.Context, formID string, values validator.Values) (*entity.ChatMessage, error)
}

type chatbotUsecase struct {
	log         *logrus.Logger
	chatbotRepo domainRepo.ChatbotRepository
	formRepo    domainRepo.FormStateRepository
}

func NewChatbotUsecase(log *logrus.Logger, chatbotRepo domainRepo.ChatbotRepository, formRepo domainRepo.FormStateRepository) ChatbotUsecase {
	return &chatbotUsecase{
		log:         log,
		chatbotRepo: chatbotRepo,
		formRepo:    formRepo,
	}
}

// History uses the visitor ID as the chat session ID, so a conversation
// survives logout and login within the same browser.
func (u *chatbotUsecase) History(ctx context.Context) ([]entity.ChatMessage, error) {
	visitorID, ok := middleware.GetVisitorIDFromContext(ctx)
	if !ok {
		return nil, ErrNoVisitor
	}

	messages, err := u.chatbotRepo.History(ctx, visitorID)
	if err != nil {
		u.log.Warnf("Failed to load chat history: %+v", err)
		return nil, err
	}
	return messages, nil
}

func (u *chatbotUsecase) Send(ctx context.Context, formID string, values validator.Values) (*entity.ChatMessage, error) {
	visitorID, ok := middleware.GetVisitorIDFromContext(ctx)
	if !ok {
		return nil, ErrNoVisitor
	}

	message, err := validate(form.ChatbotForm, values)
	if err != nil {
		return nil, err
	}

	var reply *entity.ChatMessage
	err = submitOnce(ctx, u.formRepo, u.log, formID, func() error {
		var err error
		reply, err = u.chatbotRepo.Send(ctx, visitorID, message)
		return err
	})
	if err != nil {
		return nil, err
	}
	return reply, nil
}
