package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sidhant19/dental-center-management/internal/config"
	"github.com/sidhant19/dental-center-management/internal/routes"
	"github.com/sidhant19/dental-center-management/internal/seed"
	"github.com/sidhant19/dental-center-management/internal/storage"
	"github.com/sidhant19/dental-center-management/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// envelope mirrors utils.ResponseData for decoding responses in tests.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Errors  []string        `json:"errors"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	snap, err := seed.Default()
	if err != nil {
		t.Fatalf("seed.Default: %v", err)
	}
	st, err := store.New(storage.NewMemory(), snap,
		store.WithClock(func() time.Time {
			return time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
		}))
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:            "test_secret",
		JWTExpirationMinutes: 60,
	}
	router := gin.New()
	routes.SetupRoutes(router, st, cfg)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, env
}

func login(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status %d, body %s", email, rec.Code, rec.Body.String())
	}
	var data struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.AccessToken == "" {
		t.Fatalf("login %s: no access token in %s", email, env.Data)
	}
	return data.AccessToken
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t)

	token := login(t, router, "admin@entnt.in", "admin123")
	if token == "" {
		t.Fatal("expected token")
	}

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "admin@entnt.in",
		"password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: status %d", rec.Code)
	}
	if env.Error != "Invalid email or password" {
		t.Fatalf("error = %q", env.Error)
	}

	// Binding rejects a payload that is not even shaped like credentials.
	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "not-an-email",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed login: status %d", rec.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/patients",
		"/api/v1/incidents",
		"/api/v1/dashboard/stats",
		"/api/v1/auth/profile",
	} {
		rec, _ := doJSON(t, router, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token: status %d, want 401", path, rec.Code)
		}
	}
}

func TestAdminOnlyRoutesRejectPatients(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "john@entnt.in", "patient123")

	checks := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/v1/patients"},
		{http.MethodPost, "/api/v1/patients"},
		{http.MethodGet, "/api/v1/patients-search?q=jo"},
		{http.MethodPost, "/api/v1/incidents"},
		{http.MethodGet, "/api/v1/dashboard/stats"},
		{http.MethodGet, "/api/v1/incidents-calendar"},
	}
	for _, tc := range checks {
		rec, _ := doJSON(t, router, tc.method, tc.path, token, gin.H{})
		if rec.Code != http.StatusForbidden {
			t.Errorf("%s %s as patient: status %d, want 403", tc.method, tc.path, rec.Code)
		}
	}
}

func TestPatientSeesOnlyOwnRecords(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "john@entnt.in", "patient123") // linked to p1

	rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/patients/p1", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("own record: status %d", rec.Code)
	}
	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/patients/p2", token, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("other patient's record: status %d, want 403", rec.Code)
	}
	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/patients/p2/incidents", token, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("other patient's incidents: status %d, want 403", rec.Code)
	}
}

func TestCreatePatientAndLoginWithIssuedPassword(t *testing.T) {
	router := newTestRouter(t)
	admin := login(t, router, "admin@entnt.in", "admin123")

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/patients", admin, gin.H{
		"name":    "Sam Fields",
		"dob":     "1992-03-04",
		"contact": "5551234567",
		"email":   "sam@clinic.org",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create patient: status %d, body %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Patient struct {
			ID string `json:"id"`
		} `json:"patient"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode created patient: %v", err)
	}
	if created.Patient.ID == "" || len(created.Password) != 8 {
		t.Fatalf("created = %+v", created)
	}

	// The generated credentials are usable immediately.
	patientToken := login(t, router, "sam@clinic.org", created.Password)
	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/patients/"+created.Patient.ID, patientToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("new patient reading own record: status %d", rec.Code)
	}
}

func TestCreatePatientValidationErrors(t *testing.T) {
	router := newTestRouter(t)
	admin := login(t, router, "admin@entnt.in", "admin123")

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/patients", admin, gin.H{
		"name":  "X",
		"email": "bad",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid patient: status %d", rec.Code)
	}
	if len(env.Errors) == 0 {
		t.Fatalf("expected field errors, got %s", rec.Body.String())
	}

	// Duplicate email against the seed data.
	rec, env = doJSON(t, router, http.MethodPost, "/api/v1/patients", admin, gin.H{
		"name":    "Dup User",
		"dob":     "1990-01-01",
		"contact": "5559998888",
		"email":   "john@entnt.in",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate email: status %d", rec.Code)
	}
	if env.Error != "A user with this email already exists" {
		t.Fatalf("error = %q", env.Error)
	}
}

func TestIncidentLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	admin := login(t, router, "admin@entnt.in", "admin123")

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/incidents", admin, gin.H{
		"patientId":       "p1",
		"title":           "Filling",
		"appointmentDate": "2025-08-20T10:00",
		"cost":            150,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create incident: status %d, body %s", rec.Code, rec.Body.String())
	}
	var incident struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &incident); err != nil {
		t.Fatalf("decode incident: %v", err)
	}
	if incident.Status != "Scheduled" {
		t.Fatalf("status = %q", incident.Status)
	}

	// A second booking in the same window is refused.
	rec, env = doJSON(t, router, http.MethodPost, "/api/v1/incidents", admin, gin.H{
		"patientId":       "p1",
		"title":           "Overlap",
		"appointmentDate": "2025-08-20T10:15",
		"cost":            10,
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("conflicting incident: status %d", rec.Code)
	}
	if env.Error != "Patient has another appointment at this time" {
		t.Fatalf("error = %q", env.Error)
	}

	rec, _ = doJSON(t, router, http.MethodPatch, "/api/v1/incidents/"+incident.ID+"/cancel", admin, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("cancel: status %d", rec.Code)
	}
	rec, env = doJSON(t, router, http.MethodPatch, "/api/v1/incidents/"+incident.ID+"/cancel", admin, nil)
	if rec.Code != http.StatusConflict || env.Error != "Appointment is already cancelled" {
		t.Fatalf("second cancel: status %d, error %q", rec.Code, env.Error)
	}
}

func TestDashboardStats(t *testing.T) {
	router := newTestRouter(t)
	admin := login(t, router, "admin@entnt.in", "admin123")

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/stats", admin, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats: status %d, body %s", rec.Code, rec.Body.String())
	}
	var stats struct {
		TotalRevenue          float64 `json:"totalRevenue"`
		TotalPatients         int     `json:"totalPatients"`
		ScheduledAppointments int     `json:"scheduledAppointments"`
		CompletedAppointments int     `json:"completedAppointments"`
	}
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	// Seed data: i1 (80, Completed) + i3 (60, Completed), i2 Scheduled.
	if stats.TotalRevenue != 140 {
		t.Fatalf("totalRevenue = %v, want 140", stats.TotalRevenue)
	}
	if stats.TotalPatients != 2 || stats.ScheduledAppointments != 1 || stats.CompletedAppointments != 1 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestProfile(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "john@entnt.in", "patient123")

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/auth/profile", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile: status %d", rec.Code)
	}
	var user struct {
		Email     string `json:"email"`
		Role      string `json:"role"`
		PatientID string `json:"patientId"`
	}
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if user.Email != "john@entnt.in" || user.Role != "Patient" || user.PatientID != "p1" {
		t.Fatalf("profile = %+v", user)
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health: status %d", rec.Code)
	}
}
