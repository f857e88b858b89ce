package domain

// Role identifies which directory partition a user belongs to. Authentication
// never crosses partitions: the caller always supplies the role explicitly.
type Role string

const (
	RoleMember Role = "member"
	RoleBearer Role = "bearer"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleBearer, RoleAdmin:
		return true
	}
	return false
}

// User models a club member record. Admins log in with Username, members and
// bearers with RID; exactly one of the two is meaningful for a given role.
// The id is a display identifier only — the bearer partition contains
// duplicate id values, so identity keys are always (role, identifier).
type User struct {
	ID         string `json:"id"`
	RID        string `json:"rid,omitempty"`
	Username   string `json:"username,omitempty"`
	Password   string `json:"-"`
	Role       Role   `json:"role"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Position   string `json:"position,omitempty"`
	Department string `json:"department,omitempty"`
	JoinDate   string `json:"join_date"`
	Attendance int    `json:"attendance,omitempty"`
	DPPPoints  int    `json:"dpp_points,omitempty"`
	Avatar     string `json:"avatar"`
}

// Identifier returns the credential a user of this role logs in with:
// Username for admins, RID for everyone else.
func (u *User) Identifier() string {
	if u.Role == RoleAdmin {
		return u.Username
	}
	return u.RID
}
