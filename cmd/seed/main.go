// Command seed generates a realistic dataset and writes it to the configured
// data slot, replacing whatever is there. Useful for demos and load-testing
// the dashboard views.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/sidhant19/dental-center-management/internal/config"
	"github.com/sidhant19/dental-center-management/internal/models"
	"github.com/sidhant19/dental-center-management/internal/storage"
	"github.com/sidhant19/dental-center-management/internal/store"
)

var treatments = []string{
	"Routine Checkup",
	"Cleaning",
	"Root Canal",
	"Filling",
	"Extraction",
	"Crown Fitting",
	"Whitening",
	"Braces Adjustment",
	"Gum Treatment",
	"X-Ray Review",
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	patients := flag.Int("patients", 25, "number of patients to generate")
	incidents := flag.Int("incidents", 120, "number of incidents to generate")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	slots, err := storage.Open(storage.Driver(cfg.Storage.Driver), cfg.Storage.Path)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer slots.Close()

	gofakeit.Seed(time.Now().UnixNano())

	snap, err := buildSnapshot(*patients, *incidents)
	if err != nil {
		log.Fatalf("build snapshot: %v", err)
	}

	data, err := json.Marshal(snap)
	if err != nil {
		log.Fatalf("encode snapshot: %v", err)
	}
	if err := slots.Save(store.DataSlot, data); err != nil {
		log.Fatalf("write data slot: %v", err)
	}

	log.Printf("seeded %d users, %d patients, %d incidents",
		len(snap.Users), len(snap.Patients), len(snap.Incidents))
	log.Println("admin login: admin@entnt.in / admin123")
}

func buildSnapshot(patientCount, incidentCount int) (*models.Snapshot, error) {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	// One shared hash keeps generation fast; every patient logs in with the
	// same demo password.
	patientHash, err := bcrypt.GenerateFromPassword([]byte("patient123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	snap := &models.Snapshot{
		Users: []models.User{{
			ID:       uuid.New().String(),
			Role:     models.RoleAdmin,
			Email:    "admin@entnt.in",
			Password: string(adminHash),
		}},
	}

	seenEmails := map[string]bool{"admin@entnt.in": true}
	seenContacts := map[string]bool{}

	for i := 0; i < patientCount; i++ {
		email := uniqueEmail(seenEmails)
		contact := uniqueContact(seenContacts)

		patient := models.Patient{
			ID:         uuid.New().String(),
			Name:       gofakeit.Name(),
			DOB:        gofakeit.DateRange(time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2010, 12, 31, 0, 0, 0, 0, time.UTC)).Format("2006-01-02"),
			Contact:    contact,
			HealthInfo: gofakeit.Sentence(4),
		}
		snap.Patients = append(snap.Patients, patient)
		snap.Users = append(snap.Users, models.User{
			ID:        uuid.New().String(),
			Role:      models.RolePatient,
			Email:     email,
			Password:  string(patientHash),
			PatientID: patient.ID,
		})
	}

	// Space each patient's appointments at least an hour apart so the
	// generated dataset honors the conflict window.
	nextSlot := make(map[string]time.Time, patientCount)
	start := time.Now().AddDate(0, -3, 0).Truncate(time.Hour)

	for i := 0; i < incidentCount; i++ {
		p := snap.Patients[gofakeit.Number(0, len(snap.Patients)-1)]
		at, ok := nextSlot[p.ID]
		if !ok {
			at = start.Add(time.Duration(gofakeit.Number(0, 24*30)) * time.Hour)
		}
		nextSlot[p.ID] = at.Add(time.Duration(gofakeit.Number(1, 24*7)) * time.Hour)

		status := models.StatusScheduled
		cost := float64(gofakeit.Number(30, 400))
		if at.Before(time.Now()) {
			if gofakeit.Number(0, 9) < 8 {
				status = models.StatusCompleted
			} else {
				status = models.StatusCancelled
			}
		}

		snap.Incidents = append(snap.Incidents, models.Incident{
			ID:              uuid.New().String(),
			PatientID:       p.ID,
			Title:           treatments[gofakeit.Number(0, len(treatments)-1)],
			Description:     gofakeit.Sentence(6),
			Comments:        gofakeit.Sentence(3),
			AppointmentDate: at,
			Cost:            cost,
			Status:          status,
			Files:           []models.Attachment{},
		})
	}

	return snap, nil
}

func uniqueEmail(seen map[string]bool) string {
	for {
		email := gofakeit.Email()
		if !seen[email] {
			seen[email] = true
			return email
		}
	}
}

func uniqueContact(seen map[string]bool) string {
	for {
		contact := fmt.Sprintf("%010d", gofakeit.Number(1000000000, 9999999999))
		if !seen[contact] {
			seen[contact] = true
			return contact
		}
	}
}
