package store

import (
	"strings"

	"github.com/sidhant19/dental-center-management/internal/models"
)

// Authenticate looks up the credentials against the current snapshot and
// returns the session identity on success. The same message covers unknown
// emails and wrong passwords.
func (s *Store) Authenticate(email, password string) (*models.SessionUser, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, &OpError{Kind: KindValidation, Message: "Email and password are required"}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	email = normalizeEmail(email)
	for _, u := range s.snapshot.Users {
		if strings.EqualFold(u.Email, email) && u.CheckPassword(password) {
			session := u.Sanitize()
			return &session, nil
		}
	}
	return nil, &OpError{Kind: KindUnauthorized, Message: "Invalid email or password"}
}

// UserByID returns the sanitized user for an id, or nil when unknown.
func (s *Store) UserByID(id string) *models.SessionUser {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.snapshot.Users {
		if u.ID == id {
			session := u.Sanitize()
			return &session
		}
	}
	return nil
}
