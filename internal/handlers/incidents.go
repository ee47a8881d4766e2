package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sidhant19/dental-center-management/internal/middleware"
	"github.com/sidhant19/dental-center-management/internal/models"
	"github.com/sidhant19/dental-center-management/internal/store"
	"github.com/sidhant19/dental-center-management/internal/utils"
	"github.com/sidhant19/dental-center-management/internal/validation"
)

// IncidentHandler handles incident (appointment) related requests.
type IncidentHandler struct {
	Store *store.Store
}

// NewIncidentHandler creates a new IncidentHandler.
func NewIncidentHandler(st *store.Store) *IncidentHandler {
	return &IncidentHandler{Store: st}
}

// CreateIncident handles scheduling a new appointment (admin).
func (h *IncidentHandler) CreateIncident(c *gin.Context) {
	var req validation.IncidentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	incident, err := h.Store.AddIncident(req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Created(c, "Appointment scheduled successfully", incident)
}

// UpdateIncident handles editing an appointment's fields (admin).
func (h *IncidentHandler) UpdateIncident(c *gin.Context) {
	var req validation.IncidentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	incident, err := h.Store.UpdateIncident(c.Param("id"), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, "Appointment updated successfully", incident)
}

// CancelIncident moves an appointment to Cancelled (admin).
func (h *IncidentHandler) CancelIncident(c *gin.Context) {
	incident, err := h.Store.CancelIncident(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, "Appointment cancelled successfully", incident)
}

// CompleteIncident moves an appointment to Completed (admin).
func (h *IncidentHandler) CompleteIncident(c *gin.Context) {
	incident, err := h.Store.CompleteIncident(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, "Appointment completed successfully", incident)
}

// GetIncidents handles fetching appointments for the logged-in user: admins
// see all, patients only their own.
func (h *IncidentHandler) GetIncidents(c *gin.Context) {
	role, _ := middleware.GetUserRoleFromContext(c)
	if role == models.RoleAdmin {
		utils.Success(c, "Appointments fetched successfully", h.Store.AllIncidents())
		return
	}

	patientID, ok := middleware.GetPatientIDFromContext(c)
	if !ok {
		utils.Forbidden(c, "User role not permitted to view appointments this way.")
		return
	}
	utils.Success(c, "Appointments fetched successfully", h.Store.IncidentsByPatient(patientID))
}

// GetIncidentByID handles fetching a single appointment. Accessible by
// admins and by the patient it belongs to.
func (h *IncidentHandler) GetIncidentByID(c *gin.Context) {
	incident := h.Store.IncidentByID(c.Param("id"))
	if incident == nil {
		utils.NotFound(c, "Appointment not found")
		return
	}
	if !canAccessPatient(c, incident.PatientID) {
		utils.Forbidden(c, "You are not authorized to view this appointment")
		return
	}
	utils.Success(c, "Appointment fetched successfully", incident)
}

// GetCalendar returns appointments in [from, to), ascending, for
// calendar-style range views (admin).
func (h *IncidentHandler) GetCalendar(c *gin.Context) {
	from, err := validation.ParseDate(c.Query("from"))
	if err != nil {
		utils.BadRequest(c, "Invalid 'from' date")
		return
	}
	to, err := validation.ParseDate(c.Query("to"))
	if err != nil {
		utils.BadRequest(c, "Invalid 'to' date")
		return
	}
	utils.Success(c, "Appointments fetched successfully", h.Store.IncidentsBetween(from, to))
}
