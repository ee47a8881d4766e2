package models

// Patient represents a clinic patient. The login email lives on the linked
// User record and is joined in through PatientID where views need it.
type Patient struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	DOB        string `json:"dob"`
	Contact    string `json:"contact"`
	HealthInfo string `json:"healthInfo,omitempty"`
}

// PatientWithEmail is a Patient merged with the email of its linked user,
// the shape returned by patient detail and search views.
type PatientWithEmail struct {
	Patient
	Email string `json:"email"`
}
