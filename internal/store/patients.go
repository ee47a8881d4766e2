package store

import (
	"strings"

	"github.com/sidhant19/dental-center-management/internal/models"
	"github.com/sidhant19/dental-center-management/internal/validation"
)

// AddPatient validates the payload, enforces email and contact uniqueness,
// and appends the new patient together with its linked Patient-role user in a
// single snapshot replacement. The generated plaintext password is returned
// alongside the created record; only its hash is stored.
func (s *Store) AddPatient(in validation.PatientInput) (*models.Patient, string, error) {
	if errs := validation.ValidatePatient(in); len(errs) > 0 {
		return nil, "", validationFailed(errs)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if emailTaken(s.snapshot, in.Email, "") {
		return nil, "", conflict("A user with this email already exists", "Email already exists")
	}
	if contactTaken(s.snapshot, strings.TrimSpace(in.Contact), "") {
		return nil, "", conflict("A patient with this contact number already exists", "Contact number already exists")
	}

	patient := models.Patient{
		ID:         s.newID(),
		Name:       strings.TrimSpace(in.Name),
		DOB:        strings.TrimSpace(in.DOB),
		Contact:    strings.TrimSpace(in.Contact),
		HealthInfo: strings.TrimSpace(in.HealthInfo),
	}

	password, err := generatePassword()
	if err != nil {
		return nil, "", internalFailure("Failed to add patient")
	}
	user := models.User{
		ID:        s.newID(),
		Role:      models.RolePatient,
		Email:     normalizeEmail(in.Email),
		PatientID: patient.ID,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, "", internalFailure("Failed to add patient")
	}

	next := s.snapshot.Clone()
	next.Patients = append(next.Patients, patient)
	next.Users = append(next.Users, user)
	if err := s.commit(next); err != nil {
		return nil, "", internalFailure("Failed to add patient")
	}
	return &patient, password, nil
}

// UpdatePatient re-validates the full payload and replaces the patient's
// fields and the linked user's email atomically. Uniqueness checks exclude
// the record being edited.
func (s *Store) UpdatePatient(id string, in validation.PatientInput) (*models.PatientWithEmail, error) {
	if strings.TrimSpace(id) == "" {
		return nil, notFound("Patient ID is required", "Patient ID is required")
	}
	if errs := validation.ValidatePatient(in); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pi, ok := findPatient(s.snapshot, id)
	if !ok {
		return nil, notFound("Patient not found", "Patient not found")
	}

	excludeUserID := ""
	if ui, ok := findPatientUser(s.snapshot, id); ok {
		excludeUserID = s.snapshot.Users[ui].ID
	}
	if emailTaken(s.snapshot, in.Email, excludeUserID) {
		return nil, conflict("A user with this email already exists", "Email already exists")
	}
	if contactTaken(s.snapshot, strings.TrimSpace(in.Contact), id) {
		return nil, conflict("A patient with this contact number already exists", "Contact number already exists")
	}

	next := s.snapshot.Clone()
	p := &next.Patients[pi]
	p.Name = strings.TrimSpace(in.Name)
	p.DOB = strings.TrimSpace(in.DOB)
	p.Contact = strings.TrimSpace(in.Contact)
	p.HealthInfo = strings.TrimSpace(in.HealthInfo)

	email := normalizeEmail(in.Email)
	if ui, ok := findPatientUser(next, id); ok {
		next.Users[ui].Email = email
	}

	if err := s.commit(next); err != nil {
		return nil, internalFailure("Failed to update patient")
	}
	return &models.PatientWithEmail{Patient: *p, Email: email}, nil
}

// PatientByID returns the patient merged with the linked user's email, or nil
// when the id is unknown.
func (s *Store) PatientByID(id string) *models.PatientWithEmail {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := findPatient(s.snapshot, id)
	if !ok {
		return nil
	}
	return &models.PatientWithEmail{
		Patient: s.snapshot.Patients[i],
		Email:   patientEmail(s.snapshot, id),
	}
}

// AllPatients returns every patient merged with its login email, in stored
// order.
func (s *Store) AllPatients() []models.PatientWithEmail {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.PatientWithEmail, 0, len(s.snapshot.Patients))
	for _, p := range s.snapshot.Patients {
		out = append(out, models.PatientWithEmail{
			Patient: p,
			Email:   patientEmail(s.snapshot, p.ID),
		})
	}
	return out
}

// SearchPatients matches the term case-insensitively against patient name and
// linked email, and by raw substring against the contact number. Matching
// patients come back merged with their email, in stored order.
func (s *Store) SearchPatients(term string) []models.PatientWithEmail {
	if strings.TrimSpace(term) == "" {
		return []models.PatientWithEmail{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	lowerTerm := strings.ToLower(strings.TrimSpace(term))
	out := []models.PatientWithEmail{}
	for _, p := range s.snapshot.Patients {
		email := patientEmail(s.snapshot, p.ID)
		if strings.Contains(strings.ToLower(p.Name), lowerTerm) ||
			strings.Contains(p.Contact, term) ||
			strings.Contains(strings.ToLower(email), lowerTerm) {
			out = append(out, models.PatientWithEmail{Patient: p, Email: email})
		}
	}
	return out
}
