package retail

import "github.com/google/uuid"

// Session is the bundle identifying the logged-in user. The zero value is
// the anonymous session.
type Session struct {
	// ID correlates log lines of one login; it is not stored anywhere.
	ID        uuid.UUID
	UserID    int64
	Name      string
	Role      Role
	Latitude  float64
	Longitude float64
}

// Authenticated reports whether a user is logged in.
func (s Session) Authenticated() bool {
	return s.Role.Valid()
}

// Reset clears every field, returning the session to anonymous.
func (s *Session) Reset() {
	*s = Session{}
}
