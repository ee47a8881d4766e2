package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sidhant19/dental-center-management/internal/store"
	"github.com/sidhant19/dental-center-management/internal/utils"
)

// DashboardHandler serves the aggregate views behind the admin dashboard.
type DashboardHandler struct {
	Store *store.Store
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(st *store.Store) *DashboardHandler {
	return &DashboardHandler{Store: st}
}

// DashboardStats bundles the headline aggregates into one payload.
type DashboardStats struct {
	TotalRevenue          float64 `json:"totalRevenue"`
	MonthlyRevenue        float64 `json:"monthlyRevenue"`
	RevenueChange         float64 `json:"revenueChange"`
	TotalPatients         int     `json:"totalPatients"`
	MonthlyNewPatients    int     `json:"monthlyNewPatients"`
	PatientChange         float64 `json:"patientChange"`
	ScheduledAppointments int     `json:"scheduledAppointments"`
	CompletedAppointments int     `json:"completedAppointments"`
}

// GetStats returns the headline aggregates, recomputed from the current
// snapshot.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats := DashboardStats{
		TotalRevenue:          h.Store.TotalRevenue(),
		MonthlyRevenue:        h.Store.MonthlyRevenue(),
		RevenueChange:         h.Store.RevenueChange(),
		TotalPatients:         h.Store.TotalPatients(),
		MonthlyNewPatients:    h.Store.MonthlyNewPatients(),
		PatientChange:         h.Store.PatientChange(),
		ScheduledAppointments: h.Store.ScheduledAppointments(),
		CompletedAppointments: h.Store.CompletedAppointments(),
	}
	utils.Success(c, "Stats fetched successfully", stats)
}

// GetUpcomingAppointments returns one page of upcoming scheduled
// appointments, ascending by date.
func (h *DashboardHandler) GetUpcomingAppointments(c *gin.Context) {
	page, limit := pageParams(c, 5)
	utils.Success(c, "Appointments fetched successfully", h.Store.UpcomingAppointments(page, limit))
}

// GetTopPayingPatients returns one page of the completed-revenue ranking.
func (h *DashboardHandler) GetTopPayingPatients(c *gin.Context) {
	page, limit := pageParams(c, 3)
	utils.Success(c, "Patients fetched successfully", h.Store.TopPayingPatients(page, limit))
}

// GetMostVisitedPatients returns one page of the visit-count ranking.
func (h *DashboardHandler) GetMostVisitedPatients(c *gin.Context) {
	page, limit := pageParams(c, 3)
	utils.Success(c, "Patients fetched successfully", h.Store.MostVisitedPatients(page, limit))
}

func pageParams(c *gin.Context, defaultLimit int) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}
