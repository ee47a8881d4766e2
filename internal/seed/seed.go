// Package seed bundles the dataset the store falls back to when the data
// slot is empty, mirroring the mock dataset the clinic app ships with.
package seed

import (
	"fmt"
	"time"

	"github.com/sidhant19/dental-center-management/internal/models"
)

// Default builds the bundled seed snapshot. Credentials are hashed here so
// plaintext passwords never reach the persisted document; the well-known
// defaults are admin@entnt.in/admin123 and john@entnt.in/patient123.
func Default() (*models.Snapshot, error) {
	users := []models.User{
		{ID: "1", Role: models.RoleAdmin, Email: "admin@entnt.in"},
		{ID: "2", Role: models.RolePatient, Email: "john@entnt.in", PatientID: "p1"},
		{ID: "3", Role: models.RolePatient, Email: "jane@entnt.in", PatientID: "p2"},
	}
	passwords := []string{"admin123", "patient123", "patient123"}
	for i := range users {
		if err := users[i].SetPassword(passwords[i]); err != nil {
			return nil, fmt.Errorf("seed user %s: %w", users[i].Email, err)
		}
	}

	return &models.Snapshot{
		Users: users,
		Patients: []models.Patient{
			{
				ID:         "p1",
				Name:       "John Doe",
				DOB:        "1990-05-10",
				Contact:    "1234567890",
				HealthInfo: "No allergies",
			},
			{
				ID:         "p2",
				Name:       "Jane Smith",
				DOB:        "1985-11-23",
				Contact:    "0987654321",
				HealthInfo: "Diabetic",
			},
		},
		Incidents: []models.Incident{
			{
				ID:              "i1",
				PatientID:       "p1",
				Title:           "Toothache",
				Description:     "Upper molar pain",
				Comments:        "Sensitive to cold",
				AppointmentDate: time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC),
				Cost:            80,
				Status:          models.StatusCompleted,
				Files:           []models.Attachment{},
			},
			{
				ID:              "i2",
				PatientID:       "p1",
				Title:           "Routine Checkup",
				Description:     "Six month review",
				AppointmentDate: time.Date(2025, 9, 15, 14, 30, 0, 0, time.UTC),
				Cost:            50,
				Status:          models.StatusScheduled,
				Files:           []models.Attachment{},
			},
			{
				ID:              "i3",
				PatientID:       "p2",
				Title:           "Cleaning",
				Description:     "Routine scale and polish",
				AppointmentDate: time.Date(2025, 8, 5, 9, 0, 0, 0, time.UTC),
				Cost:            60,
				Status:          models.StatusCompleted,
				Files:           []models.Attachment{},
			},
		},
	}, nil
}
