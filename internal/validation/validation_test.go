package validation

import (
	"reflect"
	"testing"
	"time"
)

func cost(v float64) *float64 { return &v }

func TestValidatePatient(t *testing.T) {
	tests := []struct {
		name string
		in   PatientInput
		want []string
	}{
		{
			name: "valid",
			in:   PatientInput{Name: "Jo Smith", DOB: "2000-01-01", Contact: "1112223333", Email: "jo@b.com"},
			want: nil,
		},
		{
			name: "everything missing",
			in:   PatientInput{},
			want: []string{
				"Name is required",
				"Contact number is required",
				"Email is required",
				"Date of birth is required",
			},
		},
		{
			name: "present but malformed",
			in:   PatientInput{Name: "J", DOB: "not-a-date", Contact: "12345", Email: "nope"},
			want: []string{
				"Name must be at least 2 characters long",
				"Contact number must be at least 10 digits",
				"Please enter a valid email address",
				"Please enter a valid date of birth",
			},
		},
		{
			name: "whitespace is not content",
			in:   PatientInput{Name: "   ", DOB: "2000-01-01", Contact: "1112223333", Email: "jo@b.com"},
			want: []string{"Name is required"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePatient(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ValidatePatient = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateIncident(t *testing.T) {
	tests := []struct {
		name string
		in   IncidentInput
		want []string
	}{
		{
			name: "valid",
			in:   IncidentInput{PatientID: "p1", Title: "Checkup", AppointmentDate: "2025-08-20T10:00", Cost: cost(50)},
			want: nil,
		},
		{
			name: "zero cost is allowed",
			in:   IncidentInput{PatientID: "p1", Title: "Checkup", AppointmentDate: "2025-08-20T10:00", Cost: cost(0)},
			want: nil,
		},
		{
			name: "everything missing",
			in:   IncidentInput{},
			want: []string{
				"Patient is required",
				"Title is required",
				"Appointment date is required",
				"Cost must be a valid positive number",
			},
		},
		{
			name: "short title and bad date",
			in:   IncidentInput{PatientID: "p1", Title: "Ab", AppointmentDate: "someday", Cost: cost(50)},
			want: []string{
				"Title must be at least 3 characters long",
				"Please enter a valid appointment date",
			},
		},
		{
			name: "negative cost",
			in:   IncidentInput{PatientID: "p1", Title: "Checkup", AppointmentDate: "2025-08-20T10:00", Cost: cost(-5)},
			want: []string{"Cost must be a valid positive number"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateIncident(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ValidateIncident = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last@sub.domain.org", "x+tag@y.io"}
	invalid := []string{"", "plain", "a@b", "a b@c.com", "@d.com", "a@.com "}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = false, want true", e)
		}
	}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = true, want false", e)
		}
	}
}

func TestParseDateLayouts(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-08-20", time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)},
		{"2025-08-20T10:30", time.Date(2025, 8, 20, 10, 30, 0, 0, time.UTC)},
		{"2025-08-20T10:30:15", time.Date(2025, 8, 20, 10, 30, 15, 0, time.UTC)},
		{"2025-08-20T10:30:00Z", time.Date(2025, 8, 20, 10, 30, 0, 0, time.UTC)},
		{" 2025-08-20 ", time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDate("20/08/2025"); err == nil {
		t.Error("ParseDate(20/08/2025) should fail")
	}
	if IsValidDate("") {
		t.Error("IsValidDate(empty) should be false")
	}
}
