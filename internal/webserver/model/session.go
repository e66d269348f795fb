package model

// Session is the set of claims carried by the signed token a logged-in
// client presents on each request.
type Session struct {
	Uuid  string
	Email string
	Role  string
}

// CanCreateInvites reports whether the session holder may mint invite codes.
func (s Session) CanCreateInvites() bool {
	return s.Role == RoleAdmin || s.Role == RoleOwner
}
