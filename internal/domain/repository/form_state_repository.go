package repository

import (
	"context"

	"charity-care-portal/internal/domain/entity"
)

// FormStateRepository stores state that belongs to a single form instance.
// Every form instance is owned by one visitor; the same formID under another
// visitor names a different instance.
type FormStateRepository interface {
	// AcquireSubmit returns false when a submission for the form is already in flight.
	AcquireSubmit(ctx context.Context, visitorID, formID string) (bool, error)
	ReleaseSubmit(ctx context.Context, visitorID, formID string) error

	SaveDraft(ctx context.Context, visitorID, formID string, draft interface{}) error
	// LoadDraft returns false when no draft exists for the form.
	LoadDraft(ctx context.Context, visitorID, formID string, draft interface{}) (bool, error)

	SaveAttachments(ctx context.Context, visitorID, formID string, files []entity.Attachment) error
	LoadAttachments(ctx context.Context, visitorID, formID string) ([]entity.Attachment, error)

	Clear(ctx context.Context, visitorID, formID string) error
}
