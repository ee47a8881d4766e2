// Package validation holds the field-level and cross-field checks that guard
// every patient and incident mutation. All functions are pure: they collect
// every violation into a list of human-readable messages and never mutate
// their input. An empty list means the payload is valid.
package validation

import (
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// dateLayouts are tried in order when parsing user-supplied dates. Forms send
// either a bare date or a datetime-local value; stored appointment dates are
// full RFC 3339 timestamps.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// PatientInput is a candidate patient payload as submitted by a caller.
type PatientInput struct {
	Name       string `json:"name"`
	DOB        string `json:"dob"`
	Contact    string `json:"contact"`
	Email      string `json:"email"`
	HealthInfo string `json:"healthInfo"`
}

// IncidentInput is a candidate incident payload as submitted by a caller.
// Cost is a pointer so that an absent cost is distinguishable from zero;
// an absent cost is invalid, not free.
type IncidentInput struct {
	PatientID       string       `json:"patientId"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Comments        string       `json:"comments"`
	AppointmentDate string       `json:"appointmentDate"`
	Cost            *float64     `json:"cost"`
	Files           []Attachment `json:"files"`
}

// Attachment mirrors models.Attachment for input payloads.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ValidatePatient checks a candidate patient payload. Rules run in order and
// independently, so a payload with several problems reports all of them.
func ValidatePatient(in PatientInput) []string {
	var errors []string

	if msg := requiredField(in.Name, "Name"); msg != "" {
		errors = append(errors, msg)
	} else if len(strings.TrimSpace(in.Name)) < 2 {
		errors = append(errors, "Name must be at least 2 characters long")
	}

	if msg := requiredField(in.Contact, "Contact number"); msg != "" {
		errors = append(errors, msg)
	} else if len(strings.TrimSpace(in.Contact)) < 10 {
		errors = append(errors, "Contact number must be at least 10 digits")
	}

	if msg := requiredField(in.Email, "Email"); msg != "" {
		errors = append(errors, msg)
	} else if !IsValidEmail(in.Email) {
		errors = append(errors, "Please enter a valid email address")
	}

	if msg := requiredField(in.DOB, "Date of birth"); msg != "" {
		errors = append(errors, msg)
	} else if !IsValidDate(in.DOB) {
		errors = append(errors, "Please enter a valid date of birth")
	}

	return errors
}

// ValidateIncident checks a candidate incident payload. Whether PatientID
// resolves to an existing patient is the caller's concern, not this function's.
func ValidateIncident(in IncidentInput) []string {
	var errors []string

	if msg := requiredField(in.PatientID, "Patient"); msg != "" {
		errors = append(errors, msg)
	}

	if msg := requiredField(in.Title, "Title"); msg != "" {
		errors = append(errors, msg)
	} else if len(strings.TrimSpace(in.Title)) < 3 {
		errors = append(errors, "Title must be at least 3 characters long")
	}

	if msg := requiredField(in.AppointmentDate, "Appointment date"); msg != "" {
		errors = append(errors, msg)
	} else if !IsValidDate(in.AppointmentDate) {
		errors = append(errors, "Please enter a valid appointment date")
	}

	if !IsValidCost(in.Cost) {
		errors = append(errors, "Cost must be a valid positive number")
	}

	return errors
}

// IsValidEmail reports whether the value matches a simple local@domain.tld
// shape. Anything stricter rejects real addresses; anything looser lets
// unusable ones through.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidDate reports whether the value parses as a calendar date in any of
// the accepted layouts.
func IsValidDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}

// ParseDate parses a user-supplied date string, trying each accepted layout.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// IsValidCost reports whether the cost is present and non-negative.
func IsValidCost(cost *float64) bool {
	return cost != nil && *cost >= 0
}

func requiredField(value, fieldName string) string {
	if strings.TrimSpace(value) == "" {
		return fieldName + " is required"
	}
	return ""
}
