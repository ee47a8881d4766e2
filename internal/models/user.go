package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleAdmin   Role = "Admin"
	RolePatient Role = "Patient"
)

// User represents a login identity. Admin users are pre-seeded; a Patient user
// is created together with its Patient record and linked through PatientID.
type User struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Email     string `json:"email"`
	Password  string `json:"password"` // bcrypt hash, never exposed through the API
	PatientID string `json:"patientId,omitempty"`
}

// SessionUser is the identity payload that is safe to hand to clients.
type SessionUser struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Email     string `json:"email"`
	PatientID string `json:"patientId,omitempty"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a SessionUser from a User, excluding the credential hash.
func (u *User) Sanitize() SessionUser {
	return SessionUser{
		ID:        u.ID,
		Role:      u.Role,
		Email:     u.Email,
		PatientID: u.PatientID,
	}
}
