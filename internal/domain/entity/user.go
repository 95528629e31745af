package entity

// User roles
const (
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

// AdminFallbackName is used on audit entries when no admin identity is known
const AdminFallbackName = "System Admin"

// User is the session identity. There is no credential check behind it: the
// record is fabricated from the submitted email, a stand-in for a real auth
// integration.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}
