package payroll

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// Actor is the authenticated caller. EmployeeID is empty for accounts with
// no linked employee profile.
type Actor struct {
	UserID     string
	EmployeeID string
	Role       string
}

// CanView reports whether actor may read salary data of targetEmployeeID.
// Admins see everything; anyone else only their own records.
func CanView(actor Actor, targetEmployeeID string) bool {
	if actor.Role == RoleAdmin {
		return true
	}
	return actor.EmployeeID != "" && actor.EmployeeID == targetEmployeeID
}
