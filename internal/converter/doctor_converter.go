package converter

import (
	"charity-care-portal/internal/delivery/dto"
	"charity-care-portal/internal/domain/entity"
)

func DoctorResponsesToEntities(resps []dto.DoctorResponse) []entity.Doctor {
	doctors := make([]entity.Doctor, 0, len(resps))
	for _, r := range resps {
		doctors = append(doctors, entity.Doctor{
			ID:         r.ID,
			FullName:   r.FullName,
			Specialty:  r.Specialty,
			Rating:     r.Rating,
			Experience: r.Experience,
			Avatar:     r.Avatar,
			Available:  r.Available,
		})
	}
	return doctors
}

func CharityResponsesToEntities(resps []dto.CharityResponse) []entity.CharityOrganization {
	orgs := make([]entity.CharityOrganization, 0, len(resps))
	for _, r := range resps {
		orgs = append(orgs, entity.CharityOrganization{
			ID:              r.ID,
			Name:            r.Name,
			Description:     r.Description,
			TotalDonations:  r.TotalDonations,
			PatientsHelped:  r.PatientsHelped,
			IsActive:        r.IsActive,
			EstablishedYear: r.EstablishedYear,
			AdminCount:      r.AdminCount,
		})
	}
	return orgs
}
