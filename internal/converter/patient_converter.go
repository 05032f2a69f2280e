package converter

import (
	"charity-care-portal/internal/delivery/dto"
	"charity-care-portal/internal/domain/entity"
)

func PatientResponseToEntity(resp *dto.PatientResponse) entity.PatientRecord {
	return entity.PatientRecord{
		ID:               resp.ID,
		UserID:           resp.UserID,
		FullName:         resp.Name,
		Age:              resp.Age,
		Condition:        resp.Condition,
		EconomicStatus:   entity.EconomicStatus(resp.EconomicStatus),
		IsVerified:       resp.IsVerified,
		AssignedDoctorID: resp.AssignedDoctorID,
		RegisteredAt:     parseTime(resp.RegisteredAt),
		LastVisit:        parseOptionalTime(resp.LastVisit),
	}
}

func PatientResponsesToEntities(resps []dto.PatientResponse) []entity.PatientRecord {
	records := make([]entity.PatientRecord, 0, len(resps))
	for i := range resps {
		records = append(records, PatientResponseToEntity(&resps[i]))
	}
	return records
}
