package converter

import (
	"encoding/json"

	"charity-care-portal/internal/delivery/dto"
	"charity-care-portal/internal/domain/entity"
)

func DonationResponseToEntity(resp *dto.DonationResponse) entity.Donation {
	status := entity.DonationStatus(resp.Status)
	if status == "" {
		status = entity.DonationPending
	}

	return entity.Donation{
		ID:            resp.ID,
		DonorID:       resp.DonorID,
		DonorName:     resp.DonorName,
		CampaignID:    resp.CampaignID,
		CampaignTitle: resp.CampaignTitle,
		Amount:        resp.Amount,
		PaymentMethod: resp.PaymentMethod,
		IsAnonymous:   resp.IsAnonymous,
		Status:        status,
		CreatedAt:     parseTime(resp.CreatedAt),
	}
}

func DonationResponsesToEntities(resps []dto.DonationResponse) []entity.Donation {
	donations := make([]entity.Donation, 0, len(resps))
	for i := range resps {
		donations = append(donations, DonationResponseToEntity(&resps[i]))
	}
	return donations
}

func DonationSubmissionToDTO(sub *entity.DonationSubmission) *dto.CreateDonationRequest {
	return &dto.CreateDonationRequest{
		Amount:        json.Number(sub.Amount.String()),
		DonorName:     sub.DonorName,
		DonorEmail:    sub.DonorEmail,
		DonorPhone:    sub.DonorPhone,
		Message:       sub.Message,
		PaymentMethod: sub.PaymentMethod,
		IsAnonymous:   sub.IsAnonymous,
		CampaignID:    sub.CampaignID,
	}
}
