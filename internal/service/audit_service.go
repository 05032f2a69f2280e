package service

import (
	"context"
	"time"

	"charity-care-portal/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

type AuditService interface {
	Record(ctx context.Context, event entity.AuditEvent)
}

type auditService struct {
	log *logrus.Logger
}

// NewAuditService writes audit events to the structured log under the
// "audit" field; the backend owns durable storage.
func NewAuditService(log *logrus.Logger) AuditService {
	return &auditService{log: log}
}

func (s *auditService) Record(ctx context.Context, event entity.AuditEvent) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	fields := logrus.Fields{
		"audit":      true,
		"action":     event.Action,
		"visitor_id": event.VisitorID,
		"created_at": event.CreatedAt.Format(time.RFC3339),
	}
	if event.UserID != "" {
		fields["user_id"] = event.UserID
	}
	if event.Role != "" {
		fields["role"] = event.Role
	}
	if event.Path != "" {
		fields["path"] = event.Path
	}
	for k, v := range event.Metadata {
		fields["meta_"+k] = v
	}

	s.log.WithContext(ctx).WithFields(fields).Info("audit event")
}
