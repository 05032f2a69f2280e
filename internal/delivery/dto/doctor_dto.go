package dto

type DoctorResponse struct {
	ID         string  `json:"id" validate:"required"`
	FullName   string  `json:"fullName"`
	Specialty  string  `json:"specialty"`
	Rating     float64 `json:"rating"`
	Experience int     `json:"experience"`
	Avatar     string  `json:"avatar,omitempty"`
	Available  bool    `json:"available"`
}

type CharityResponse struct {
	ID              string `json:"id" validate:"required"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	TotalDonations  int64  `json:"totalDonations"`
	PatientsHelped  int    `json:"patientsHelped"`
	IsActive        bool   `json:"isActive"`
	EstablishedYear int    `json:"establishedYear"`
	AdminCount      int    `json:"adminCount"`
}
