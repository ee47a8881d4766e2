package models

import (
	"time"
)

// IncidentStatus represents the status of an incident (appointment)
type IncidentStatus string

const (
	StatusScheduled IncidentStatus = "Scheduled"
	StatusCompleted IncidentStatus = "Completed"
	StatusCancelled IncidentStatus = "Cancelled"
)

// Terminal reports whether no further status transition is allowed.
func (s IncidentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Attachment is a file stored inline on an incident; URL is usually a data URI.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Incident represents a scheduled dental appointment/visit record.
type Incident struct {
	ID              string         `json:"id"`
	PatientID       string         `json:"patientId"`
	Title           string         `json:"title"`
	Description     string         `json:"description,omitempty"`
	Comments        string         `json:"comments,omitempty"`
	AppointmentDate time.Time      `json:"appointmentDate"`
	Cost            float64        `json:"cost"`
	Status          IncidentStatus `json:"status"`
	Files           []Attachment   `json:"files"`
}
