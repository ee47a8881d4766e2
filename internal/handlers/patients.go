package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sidhant19/dental-center-management/internal/store"
	"github.com/sidhant19/dental-center-management/internal/utils"
	"github.com/sidhant19/dental-center-management/internal/validation"
)

// PatientHandler handles patient-related requests.
type PatientHandler struct {
	Store *store.Store
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(st *store.Store) *PatientHandler {
	return &PatientHandler{Store: st}
}

// CreatePatientResponse carries the created record plus the one-time
// generated password for the linked login.
type CreatePatientResponse struct {
	Patient  interface{} `json:"patient"`
	Password string      `json:"password"`
}

// CreatePatient handles creating a new patient together with its login.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req validation.PatientInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	patient, password, err := h.Store.AddPatient(req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Created(c, "Patient added successfully", CreatePatientResponse{
		Patient:  patient,
		Password: password,
	})
}

// UpdatePatient handles replacing a patient's fields and its login email.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	var req validation.PatientInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	patient, err := h.Store.UpdatePatient(c.Param("id"), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, "Patient updated successfully", patient)
}

// GetPatients handles fetching all patients (admin).
func (h *PatientHandler) GetPatients(c *gin.Context) {
	utils.Success(c, "Patients fetched successfully", h.Store.AllPatients())
}

// GetPatientByID handles fetching a single patient, merged with its email.
// Accessible by admins and by the patient itself.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	patientID := c.Param("id")
	if !canAccessPatient(c, patientID) {
		utils.Forbidden(c, "You are not authorized to view this patient")
		return
	}

	patient := h.Store.PatientByID(patientID)
	if patient == nil {
		utils.NotFound(c, "Patient not found")
		return
	}
	utils.Success(c, "Patient fetched successfully", patient)
}

// SearchPatients handles free-text patient search (admin).
func (h *PatientHandler) SearchPatients(c *gin.Context) {
	utils.Success(c, "Patients fetched successfully", h.Store.SearchPatients(c.Query("q")))
}

// GetPatientIncidents returns the patient's full visit history, newest first.
func (h *PatientHandler) GetPatientIncidents(c *gin.Context) {
	patientID := c.Param("id")
	if !canAccessPatient(c, patientID) {
		utils.Forbidden(c, "You are not authorized to view this patient's appointments")
		return
	}
	utils.Success(c, "Appointments fetched successfully", h.Store.IncidentsByPatient(patientID))
}

// GetUpcomingAppointments returns the patient's future appointments, soonest
// first.
func (h *PatientHandler) GetUpcomingAppointments(c *gin.Context) {
	patientID := c.Param("id")
	if !canAccessPatient(c, patientID) {
		utils.Forbidden(c, "You are not authorized to view this patient's appointments")
		return
	}
	utils.Success(c, "Appointments fetched successfully", h.Store.UpcomingAppointmentsByPatient(patientID))
}

// GetHistoricalAppointments returns the patient's past appointments, newest
// first.
func (h *PatientHandler) GetHistoricalAppointments(c *gin.Context) {
	patientID := c.Param("id")
	if !canAccessPatient(c, patientID) {
		utils.Forbidden(c, "You are not authorized to view this patient's appointments")
		return
	}
	utils.Success(c, "Appointments fetched successfully", h.Store.HistoricalAppointmentsByPatient(patientID))
}

// GetFileAttachments returns every file attached to the patient's incidents.
func (h *PatientHandler) GetFileAttachments(c *gin.Context) {
	patientID := c.Param("id")
	if !canAccessPatient(c, patientID) {
		utils.Forbidden(c, "You are not authorized to view this patient's files")
		return
	}
	utils.Success(c, "Files fetched successfully", h.Store.FileAttachments(patientID))
}
