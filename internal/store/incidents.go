package store

import (
	"sort"
	"strings"
	"time"

	"github.com/sidhant19/dental-center-management/internal/models"
	"github.com/sidhant19/dental-center-management/internal/validation"
)

// AddIncident validates the payload, checks that the referenced patient
// exists and that the 30-minute conflict window holds, then appends the new
// incident with status Scheduled.
func (s *Store) AddIncident(in validation.IncidentInput) (*models.Incident, error) {
	if errs := validation.ValidateIncident(in); len(errs) > 0 {
		return nil, validationFailed(errs)
	}
	at, err := validation.ParseDate(in.AppointmentDate)
	if err != nil {
		return nil, validationFailed([]string{"Please enter a valid appointment date"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := findPatient(s.snapshot, in.PatientID); !ok {
		return nil, notFound("Patient not found", "Patient not found")
	}
	if hasConflict(s.snapshot, in.PatientID, at, "") {
		return nil, conflict("Patient has another appointment at this time", "Appointment time conflict")
	}

	incident := models.Incident{
		ID:              s.newID(),
		PatientID:       in.PatientID,
		Title:           strings.TrimSpace(in.Title),
		Description:     strings.TrimSpace(in.Description),
		Comments:        strings.TrimSpace(in.Comments),
		AppointmentDate: at,
		Cost:            costOrZero(in.Cost),
		Status:          models.StatusScheduled,
		Files:           attachments(in.Files),
	}

	next := s.snapshot.Clone()
	next.Incidents = append(next.Incidents, incident)
	if err := s.commit(next); err != nil {
		return nil, internalFailure("Failed to schedule appointment")
	}
	return &incident, nil
}

// UpdateIncident re-validates the full payload and replaces the incident's
// editable fields. Status and owning patient are preserved; the conflict
// window is re-checked excluding the incident being edited.
func (s *Store) UpdateIncident(id string, in validation.IncidentInput) (*models.Incident, error) {
	if strings.TrimSpace(id) == "" {
		return nil, notFound("Incident ID is required", "Incident ID is required")
	}
	if errs := validation.ValidateIncident(in); len(errs) > 0 {
		return nil, validationFailed(errs)
	}
	at, err := validation.ParseDate(in.AppointmentDate)
	if err != nil {
		return nil, validationFailed([]string{"Please enter a valid appointment date"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ii, ok := findIncident(s.snapshot, id)
	if !ok {
		return nil, notFound("Appointment not found", "Appointment not found")
	}
	if _, ok := findPatient(s.snapshot, in.PatientID); !ok {
		return nil, notFound("Patient not found", "Patient not found")
	}
	if hasConflict(s.snapshot, in.PatientID, at, id) {
		return nil, conflict("Patient has another appointment at this time", "Appointment time conflict")
	}

	next := s.snapshot.Clone()
	inc := &next.Incidents[ii]
	inc.Title = strings.TrimSpace(in.Title)
	inc.Description = strings.TrimSpace(in.Description)
	inc.Comments = strings.TrimSpace(in.Comments)
	inc.AppointmentDate = at
	inc.Cost = costOrZero(in.Cost)
	inc.Files = attachments(in.Files)

	if err := s.commit(next); err != nil {
		return nil, internalFailure("Failed to update appointment")
	}
	out := *inc
	return &out, nil
}

// CancelIncident moves an incident to Cancelled. Cancelled is terminal, so
// cancelling twice fails.
func (s *Store) CancelIncident(id string) (*models.Incident, error) {
	return s.transition(id, models.StatusCancelled)
}

// CompleteIncident moves an incident to Completed. Completing twice fails,
// and a cancelled appointment can never be completed.
func (s *Store) CompleteIncident(id string) (*models.Incident, error) {
	return s.transition(id, models.StatusCompleted)
}

func (s *Store) transition(id string, to models.IncidentStatus) (*models.Incident, error) {
	if strings.TrimSpace(id) == "" {
		return nil, notFound("Incident ID is required", "Incident ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ii, ok := findIncident(s.snapshot, id)
	if !ok {
		return nil, notFound("Appointment not found", "Appointment not found")
	}

	current := s.snapshot.Incidents[ii].Status
	switch {
	case to == models.StatusCancelled && current == models.StatusCancelled:
		return nil, conflict("Appointment is already cancelled", "Appointment already cancelled")
	case to == models.StatusCompleted && current == models.StatusCompleted:
		return nil, conflict("Appointment is already completed", "Appointment already completed")
	case to == models.StatusCompleted && current == models.StatusCancelled:
		return nil, conflict("Cannot complete a cancelled appointment", "Cannot complete cancelled appointment")
	}

	next := s.snapshot.Clone()
	next.Incidents[ii].Status = to
	if err := s.commit(next); err != nil {
		if to == models.StatusCancelled {
			return nil, internalFailure("Failed to cancel appointment")
		}
		return nil, internalFailure("Failed to complete appointment")
	}
	out := next.Incidents[ii]
	return &out, nil
}

// IncidentByID returns the incident or nil when the id is unknown.
func (s *Store) IncidentByID(id string) *models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := findIncident(s.snapshot, id)
	if !ok {
		return nil
	}
	out := s.snapshot.Incidents[i]
	return &out
}

// AllIncidents returns every incident in stored order.
func (s *Store) AllIncidents() []models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Incident, len(s.snapshot.Incidents))
	copy(out, s.snapshot.Incidents)
	return out
}

// IncidentsByPatient returns the patient's full visit history, newest first.
func (s *Store) IncidentsByPatient(patientID string) []models.Incident {
	s.mu.RLock()
	out := incidentsOf(s.snapshot, patientID)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppointmentDate.After(out[j].AppointmentDate)
	})
	return out
}

// UpcomingAppointmentsByPatient returns the patient's appointments strictly
// after now, soonest first.
func (s *Store) UpcomingAppointmentsByPatient(patientID string) []models.Incident {
	s.mu.RLock()
	now := s.now()
	all := incidentsOf(s.snapshot, patientID)
	s.mu.RUnlock()

	out := []models.Incident{}
	for _, in := range all {
		if in.AppointmentDate.After(now) {
			out = append(out, in)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppointmentDate.Before(out[j].AppointmentDate)
	})
	return out
}

// HistoricalAppointmentsByPatient returns the patient's appointments at or
// before now, newest first.
func (s *Store) HistoricalAppointmentsByPatient(patientID string) []models.Incident {
	s.mu.RLock()
	now := s.now()
	all := incidentsOf(s.snapshot, patientID)
	s.mu.RUnlock()

	out := []models.Incident{}
	for _, in := range all {
		if !in.AppointmentDate.After(now) {
			out = append(out, in)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppointmentDate.After(out[j].AppointmentDate)
	})
	return out
}

// FileAttachments returns every file attached to the patient's incidents, in
// incident order.
func (s *Store) FileAttachments(patientID string) []models.Attachment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Attachment{}
	for _, in := range s.snapshot.Incidents {
		if in.PatientID == patientID {
			out = append(out, in.Files...)
		}
	}
	return out
}

// IncidentsBetween returns incidents with from <= appointmentDate < to in
// ascending date order, feeding calendar-style range views.
func (s *Store) IncidentsBetween(from, to time.Time) []models.Incident {
	s.mu.RLock()
	out := []models.Incident{}
	for _, in := range s.snapshot.Incidents {
		if !in.AppointmentDate.Before(from) && in.AppointmentDate.Before(to) {
			out = append(out, in)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppointmentDate.Before(out[j].AppointmentDate)
	})
	return out
}

// HasAppointmentConflict reports whether any other non-cancelled incident for
// the patient falls within the conflict window of the candidate time.
// excludeID names an incident to ignore, for edits.
func (s *Store) HasAppointmentConflict(patientID string, at time.Time, excludeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return hasConflict(s.snapshot, patientID, at, excludeID)
}

func hasConflict(snap *models.Snapshot, patientID string, at time.Time, excludeID string) bool {
	for _, in := range snap.Incidents {
		if in.ID == excludeID || in.PatientID != patientID || in.Status == models.StatusCancelled {
			continue
		}
		diff := in.AppointmentDate.Sub(at)
		if diff < 0 {
			diff = -diff
		}
		if diff < ConflictWindow {
			return true
		}
	}
	return false
}

func incidentsOf(snap *models.Snapshot, patientID string) []models.Incident {
	out := []models.Incident{}
	for _, in := range snap.Incidents {
		if in.PatientID == patientID {
			out = append(out, in)
		}
	}
	return out
}

func costOrZero(cost *float64) float64 {
	if cost == nil {
		return 0
	}
	return *cost
}

func attachments(in []validation.Attachment) []models.Attachment {
	out := make([]models.Attachment, 0, len(in))
	for _, f := range in {
		out = append(out, models.Attachment{Name: f.Name, URL: f.URL})
	}
	return out
}
