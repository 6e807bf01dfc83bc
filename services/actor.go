package services

// Actor identifies the authenticated caller of a mutating operation.
// Controllers build it from the JWT claims set by the auth middleware;
// SourceIP feeds the audit trail.
type Actor struct {
	UserID   int
	Name     string
	RoleID   int
	SourceIP string
}
