package valueobjects

// Role is a user's access tier. The raw string is preserved so legacy rows
// with out-of-vocabulary roles round-trip through storage unchanged; unknown
// values simply carry no staff privileges.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdvisor Role = "advisor"
	RoleAdmin   Role = "admin"
	RoleUnknown Role = "unknown"
)

var validRoles = map[Role]bool{
	RoleStudent: true,
	RoleAdvisor: true,
	RoleAdmin:   true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

// Normalize maps out-of-vocabulary values to RoleUnknown.
func (r Role) Normalize() Role {
	if r.IsValid() {
		return r
	}
	return RoleUnknown
}

// CanViewAllTickets reports whether this role sees every ticket in the store
// rather than only its own.
func (r Role) CanViewAllTickets() bool {
	return r == RoleAdvisor || r == RoleAdmin
}
