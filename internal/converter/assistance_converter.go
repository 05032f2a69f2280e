package converter

import (
	"encoding/base64"
	"encoding/json"

	"charity-care-portal/internal/delivery/dto"
	"charity-care-portal/internal/domain/entity"
)

func AssistanceResponseToEntity(resp *dto.AssistanceResponse) entity.AssistanceRequest {
	status, ok := entity.ParseAssistanceStatus(resp.Status)
	if !ok {
		status = entity.AssistancePending
	}

	return entity.AssistanceRequest{
		ID:               resp.ID,
		PatientID:        resp.PatientID,
		PatientName:      resp.PatientName,
		ReviewerID:       resp.ReviewerID,
		RequestType:      resp.RequestType,
		Title:            resp.Title,
		Description:      resp.Description,
		MedicalCondition: resp.MedicalCondition,
		RequestedAmount:  resp.RequestedAmount,
		RaisedAmount:     resp.RaisedAmount,
		Status:           status,
		Urgency:          resp.Urgency,
		SubmittedAt:      parseTime(resp.SubmittedAt),
		ApprovedBy:       resp.ApprovedBy,
	}
}

func AssistanceResponsesToEntities(resps []dto.AssistanceResponse) []entity.AssistanceRequest {
	requests := make([]entity.AssistanceRequest, 0, len(resps))
	for i := range resps {
		requests = append(requests, AssistanceResponseToEntity(&resps[i]))
	}
	return requests
}

func AssistanceSubmissionToDTO(sub *entity.AssistanceSubmission) *dto.CreateAssistanceRequest {
	attachments := make([]dto.AttachmentPayload, 0, len(sub.Attachments))
	for _, a := range sub.Attachments {
		attachments = append(attachments, dto.AttachmentPayload{
			Name:     a.Name,
			MimeType: a.MIME,
			Size:     a.Size,
			Content:  base64.StdEncoding.EncodeToString(a.Content),
		})
	}

	return &dto.CreateAssistanceRequest{
		RequestType:      sub.RequestType,
		Title:            sub.Title,
		Description:      sub.Description,
		RequestedAmount:  json.Number(sub.RequestedAmount.String()),
		Urgency:          sub.Urgency,
		ContactPhone:     sub.ContactPhone,
		MedicalCondition: sub.MedicalCondition,
		Attachments:      attachments,
	}
}

// AssistanceRequestToCampaign projects a fundable request onto the public
// campaign shown on the donations page.
func AssistanceRequestToCampaign(req entity.AssistanceRequest) entity.Campaign {
	return entity.Campaign{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Target:      req.RequestedAmount,
		Raised:      req.RaisedAmount,
		Progress:    req.Progress(),
	}
}
