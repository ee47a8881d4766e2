// Package store owns the in-memory dataset and funnels every mutation through
// its methods. Each write validates the full payload first, builds a new
// snapshot, persists the whole serialized document to the data slot, and only
// then swaps the snapshot in; a failed write leaves the previous snapshot
// untouched. Reads recompute their views from the current snapshot on every
// call, so each call sees one consistent dataset.
package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sidhant19/dental-center-management/internal/models"
	"github.com/sidhant19/dental-center-management/internal/storage"
)

// ConflictWindow is the minimum spacing required between two non-cancelled
// appointments for the same patient.
const ConflictWindow = 30 * time.Minute

// DataSlot is the storage slot holding the serialized dataset.
const DataSlot = "AppData"

// Store is the single owner of the dataset.
type Store struct {
	mu       sync.RWMutex
	snapshot *models.Snapshot

	storage storage.Store
	slot    string

	now   func() time.Time
	newID func() string
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces the ambient clock, letting tests pin "now".
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the id generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithSlot changes the storage slot name the dataset is persisted under.
func WithSlot(slot string) Option {
	return func(s *Store) { s.slot = slot }
}

// New loads the dataset from the data slot, falling back to the given seed
// snapshot when the slot is empty (the seed is persisted immediately so the
// slot exists from then on). A malformed stored document fails construction;
// there is nothing sensible to serve from a dataset that cannot be decoded.
func New(st storage.Store, seed *models.Snapshot, opts ...Option) (*Store, error) {
	s := &Store{
		storage: st,
		slot:    DataSlot,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}

	data, ok, err := st.Load(s.slot)
	if err != nil {
		return nil, fmt.Errorf("load data slot: %w", err)
	}
	if ok {
		var snap models.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("decode data slot: %w", err)
		}
		s.snapshot = &snap
		return s, nil
	}

	if seed == nil {
		seed = &models.Snapshot{}
	}
	s.snapshot = seed.Clone()
	if err := s.persist(s.snapshot); err != nil {
		return nil, fmt.Errorf("persist seed dataset: %w", err)
	}
	return s, nil
}

// Snapshot returns a copy of the current dataset. Used by tests and exports;
// regular reads go through the query methods.
func (s *Store) Snapshot() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// persist serializes the candidate snapshot and overwrites the data slot
// wholly. Called with the write lock held, before the snapshot is swapped in.
func (s *Store) persist(snap *models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.storage.Save(s.slot, data)
}

// commit persists the candidate snapshot and swaps it in on success.
func (s *Store) commit(snap *models.Snapshot) error {
	if err := s.persist(snap); err != nil {
		return err
	}
	s.snapshot = snap
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// emailTaken reports whether any user other than excludeUserID already owns
// the email. Comparison is case-insensitive.
func emailTaken(snap *models.Snapshot, email, excludeUserID string) bool {
	email = normalizeEmail(email)
	for _, u := range snap.Users {
		if excludeUserID != "" && u.ID == excludeUserID {
			continue
		}
		if strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

// contactTaken reports whether any patient other than excludePatientID already
// owns the contact number.
func contactTaken(snap *models.Snapshot, contact, excludePatientID string) bool {
	for _, p := range snap.Patients {
		if excludePatientID != "" && p.ID == excludePatientID {
			continue
		}
		if p.Contact == contact {
			return true
		}
	}
	return false
}

func findPatient(snap *models.Snapshot, id string) (int, bool) {
	for i, p := range snap.Patients {
		if p.ID == id {
			return i, true
		}
	}
	return -1, false
}

func findIncident(snap *models.Snapshot, id string) (int, bool) {
	for i, in := range snap.Incidents {
		if in.ID == id {
			return i, true
		}
	}
	return -1, false
}

// findPatientUser locates the Patient-role user linked to a patient record.
func findPatientUser(snap *models.Snapshot, patientID string) (int, bool) {
	for i, u := range snap.Users {
		if u.Role == models.RolePatient && u.PatientID == patientID {
			return i, true
		}
	}
	return -1, false
}

func patientEmail(snap *models.Snapshot, patientID string) string {
	if i, ok := findPatientUser(snap, patientID); ok {
		return snap.Users[i].Email
	}
	return ""
}
