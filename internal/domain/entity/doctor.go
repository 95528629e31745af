package entity

// MaxDoctorBioLength bounds the bio at the edit surface, not in the store
const MaxDoctorBioLength = 500

// Doctor represents a practitioner profile shown on the public site
type Doctor struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Image     string  `json:"image"`
	Bio       string  `json:"bio"`
	Rating    float64 `json:"rating,omitempty"`
}
