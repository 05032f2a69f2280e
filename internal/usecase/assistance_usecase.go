package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"charity-care-portal/internal/delivery/form"
	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/internal/service"
	"charity-care-portal/pkg/validator"
)

var ErrAttachmentNotFound = errors.New("attachment not found")

// AttachmentInfo describes a staged file without its content.
type AttachmentInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	MIME string `json:"mime"`
}

// StagedAttachments is the pending file list after an add or remove.
type StagedAttachments struct {
	Files      []AttachmentInfo `json:"files"`
	Rejections []form.Rejection `json:"rejections,omitempty"`
}

func describeAttachments(files []entity.Attachment, rejections []form.Rejection) *StagedAttachments {
	staged := &StagedAttachments{Files: make([]AttachmentInfo, 0, len(files)), Rejections: rejections}
	for _, f := range files {
		staged.Files = append(staged.Files, AttachmentInfo{Name: f.Name, Size: f.Size, MIME: f.MIME})
	}
	return staged
}

type AssistanceUsecase interface {
	List(ctx context.Context) ([]entity.AssistanceRequest, error)
	StagedAttachments(ctx context.Context, formID string) (*StagedAttachments, error)
	AddAttachments(ctx context.Context, formID string, uploads []form.Upload) (*StagedAttachments, error)
	RemoveAttachment(ctx context.Context, formID string, index int) (*StagedAttachments, error)
	Submit(ctx context.Context, formID string, values validator.Values) (*entity.AssistanceRequest, error)
	UpdateStatus(ctx context.Context, id, status string) (*entity.AssistanceRequest, error)
}

type assistanceUsecase struct {
	log            *logrus.Logger
	assistanceRepo domainRepo.AssistanceRepository
	formRepo       domainRepo.FormStateRepository
	visitorRepo    domainRepo.VisitorRepository
	audit          service.AuditService
}

func NewAssistanceUsecase(
	log *logrus.Logger,
	assistanceRepo domainRepo.AssistanceRepository,
	formRepo domainRepo.FormStateRepository,
	visitorRepo domainRepo.VisitorRepository,
	audit service.AuditService,
) AssistanceUsecase {
	return &assistanceUsecase{
		log:            log,
		assistanceRepo: assistanceRepo,
		formRepo:       formRepo,
		visitorRepo:    visitorRepo,
		audit:          audit,
	}
}

func (u *assistanceUsecase) List(ctx context.Context) ([]entity.AssistanceRequest, error) {
	session, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := u.assistanceRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find assistance requests: %+v", err)
		return nil, err
	}
	return service.FilterVisible(session, requests)
}

func (u *assistanceUsecase) StagedAttachments(ctx context.Context, formID string) (*StagedAttachments, error) {
	visitorID, err := formOwner(ctx, formID)
	if err != nil {
		return nil, err
	}
	files, err := u.formRepo.LoadAttachments(ctx, visitorID, formID)
	if err != nil {
		u.log.Warnf("Failed to load attachments for form %s: %+v", formID, err)
		return nil, err
	}
	return describeAttachments(files, nil), nil
}

// AddAttachments validates each upload on its own; rejected files never
// reach the pending set.
func (u *assistanceUsecase) AddAttachments(ctx context.Context, formID string, uploads []form.Upload) (*StagedAttachments, error) {
	return u.editAttachments(ctx, formID, func(set *form.AttachmentSet) ([]form.Rejection, error) {
		return set.Add(uploads...), nil
	})
}

func (u *assistanceUsecase) RemoveAttachment(ctx context.Context, formID string, index int) (*StagedAttachments, error) {
	return u.editAttachments(ctx, formID, func(set *form.AttachmentSet) ([]form.Rejection, error) {
		if !set.Remove(index) {
			return nil, ErrAttachmentNotFound
		}
		return nil, nil
	})
}

func (u *assistanceUsecase) editAttachments(
	ctx context.Context,
	formID string,
	edit func(*form.AttachmentSet) ([]form.Rejection, error),
) (*StagedAttachments, error) {
	visitorID, err := formOwner(ctx, formID)
	if err != nil {
		return nil, err
	}

	staged, err := u.formRepo.LoadAttachments(ctx, visitorID, formID)
	if err != nil {
		u.log.Warnf("Failed to load attachments for form %s: %+v", formID, err)
		return nil, err
	}

	set := form.NewAttachmentSet(staged)
	rejections, err := edit(set)
	if err != nil {
		return nil, err
	}

	files := set.Files()
	if err := u.formRepo.SaveAttachments(ctx, visitorID, formID, files); err != nil {
		u.log.Warnf("Failed to save attachments for form %s: %+v", formID, err)
		return nil, err
	}
	return describeAttachments(files, rejections), nil
}

// Submit sends the request with the staged attachments and clears the form state.
func (u *assistanceUsecase) Submit(ctx context.Context, formID string, values validator.Values) (*entity.AssistanceRequest, error) {
	submission, err := validate(form.AssistanceForm, values)
	if err != nil {
		return nil, err
	}

	visitorID, err := formOwner(ctx, formID)
	if err != nil {
		return nil, err
	}

	var request *entity.AssistanceRequest
	err = submitOnce(ctx, u.formRepo, u.log, formID, func() error {
		files, err := u.formRepo.LoadAttachments(ctx, visitorID, formID)
		if err != nil {
			u.log.Warnf("Failed to load attachments for form %s: %+v", formID, err)
			return err
		}
		submission.Attachments = files

		request, err = u.assistanceRepo.Create(ctx, &submission)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := u.formRepo.Clear(ctx, visitorID, formID); err != nil {
		u.log.Warnf("Failed to clear form %s: %+v", formID, err)
	}
	u.audit.Record(ctx, auditEvent(ctx, entity.AuditActionAssistanceCreate, map[string]interface{}{
		"request_id":  request.ID,
		"attachments": len(submission.Attachments),
	}))
	pushNotice(ctx, u.visitorRepo, u.log, successNotice(entity.NoticeAssistanceSubmitted))
	return request, nil
}

func (u *assistanceUsecase) UpdateStatus(ctx context.Context, id, status string) (*entity.AssistanceRequest, error) {
	if id == "" {
		return nil, ErrMissingRouteParam
	}
	parsed, ok := entity.ParseAssistanceStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	request, err := u.assistanceRepo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		u.log.Warnf("Failed to update assistance request %s status: %+v", id, err)
		return nil, err
	}

	u.audit.Record(ctx, auditEvent(ctx, entity.AuditActionAssistanceStatus, map[string]interface{}{
		"request_id": id,
		"status":     string(parsed),
	}))
	pushNotice(ctx, u.visitorRepo, u.log, successNotice(entity.NoticeStatusUpdated))
	return request, nil
}
