package models

import "time"

// Session is the request-scoped view of the client-held credential/profile pair.
type Session struct {
	Token     string    `json:"-"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.User.IsAdmin()
}

func (s *Session) IsUser() bool {
	return s != nil && s.User.IsUser()
}
