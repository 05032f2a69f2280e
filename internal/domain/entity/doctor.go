package entity

// Doctor represents a volunteer doctor listed in the directory
type Doctor struct {
	ID         string  `json:"id"`
	FullName   string  `json:"full_name"`
	Specialty  string  `json:"specialty"`
	Rating     float64 `json:"rating"`
	Experience int     `json:"experience"`
	Avatar     string  `json:"avatar,omitempty"`
	Available  bool    `json:"available"`
}

// DoctorFilter is a domain-level filter for the doctor directory.
type DoctorFilter struct {
	Specialty string
	Search    string
}

// CharityOrganization is a partner organization managing funds and resources.
type CharityOrganization struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	TotalDonations  int64  `json:"total_donations"`
	PatientsHelped  int    `json:"patients_helped"`
	IsActive        bool   `json:"is_active"`
	EstablishedYear int    `json:"established_year"`
	AdminCount      int    `json:"admin_count"`
}

// ChatMessage is one exchange turn with the assistant.
type ChatMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at,omitempty"`
}
