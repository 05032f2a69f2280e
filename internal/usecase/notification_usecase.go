package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"charity-care-portal/internal/delivery/http/middleware"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
)

// NotificationList is the notifications page.
type NotificationList struct {
	Notifications []entity.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unread_count"`
}

type NotificationUsecase interface {
	List(ctx context.Context) (*NotificationList, error)
	MarkAsRead(ctx context.Context, id string) (int, error)
	MarkAllAsRead(ctx context.Context) error
}

type notificationUsecase struct {
	log              *logrus.Logger
	notificationRepo domainRepo.NotificationRepository
	prefRepo         domainRepo.PreferenceRepository
	visitorRepo      domainRepo.VisitorRepository
}

func NewNotificationUsecase(
	log *logrus.Logger,
	notificationRepo domainRepo.NotificationRepository,
	prefRepo domainRepo.PreferenceRepository,
	visitorRepo domainRepo.VisitorRepository,
) NotificationUsecase {
	return &notificationUsecase{
		log:              log,
		notificationRepo: notificationRepo,
		prefRepo:         prefRepo,
		visitorRepo:      visitorRepo,
	}
}

// List fetches the feed from the backend. The result is committed to the
// visitor's store only if no newer navigation started meanwhile; a stale
// response is returned as-is but never overwrites newer state.
func (u *notificationUsecase) List(ctx context.Context) (*NotificationList, error) {
	visitorID, ok := middleware.GetVisitorIDFromContext(ctx)
	if !ok {
		return nil, ErrNoVisitor
	}
	seq, tracked := middleware.GetNavigationSeqFromContext(ctx)

	notifications, err := u.notificationRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find notifications: %+v", err)
		return nil, err
	}

	list := &NotificationList{Notifications: notifications}
	for _, n := range notifications {
		if !n.Read {
			list.UnreadCount++
		}
	}

	if tracked {
		latest, err := u.visitorRepo.IsLatestNavigation(ctx, visitorID, seq)
		if err != nil {
			u.log.Warnf("Failed to check navigation sequence for visitor %s: %+v", visitorID, err)
			return list, nil
		}
		if !latest {
			return list, nil
		}
	}

	if _, err := u.prefRepo.SetNotifications(ctx, visitorID, notifications); err != nil {
		u.log.Warnf("Failed to store notifications for visitor %s: %+v", visitorID, err)
		return nil, err
	}
	return list, nil
}

// MarkAsRead returns the unread count after the change, never below zero.
func (u *notificationUsecase) MarkAsRead(ctx context.Context, id string) (int, error) {
	if id == "" {
		return 0, ErrMissingRouteParam
	}
	visitorID, ok := middleware.GetVisitorIDFromContext(ctx)
	if !ok {
		return 0, ErrNoVisitor
	}

	if err := u.notificationRepo.MarkAsRead(ctx, id); err != nil {
		u.log.Warnf("Failed to mark notification %s as read: %+v", id, err)
		return 0, err
	}
	return u.prefRepo.MarkAsRead(ctx, visitorID, id)
}

func (u *notificationUsecase) MarkAllAsRead(ctx context.Context) error {
	visitorID, ok := middleware.GetVisitorIDFromContext(ctx)
	if !ok {
		return ErrNoVisitor
	}

	if err := u.notificationRepo.MarkAllAsRead(ctx); err != nil {
		u.log.Warnf("Failed to mark all notifications as read: %+v", err)
		return err
	}
	return u.prefRepo.MarkAllAsRead(ctx, visitorID)
}
