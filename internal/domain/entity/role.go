package entity

// Role names carried in User.Roles and in session claims.
const (
	RolePatient = "Patient"
	RoleNurse   = "Nurse"
	RoleAdmin   = "Admin"
)

// DefaultRoles is assigned when a user is created without roles.
func DefaultRoles() []string {
	return []string{RolePatient}
}
