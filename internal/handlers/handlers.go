package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sidhant19/dental-center-management/internal/middleware"
	"github.com/sidhant19/dental-center-management/internal/models"
	"github.com/sidhant19/dental-center-management/internal/store"
	"github.com/sidhant19/dental-center-management/internal/utils"
)

// respondStoreError maps a structured store failure onto the HTTP surface.
func respondStoreError(c *gin.Context, err error) {
	if opErr, ok := store.AsOpError(err); ok {
		status := http.StatusInternalServerError
		switch opErr.Kind {
		case store.KindValidation:
			status = http.StatusBadRequest
		case store.KindNotFound:
			status = http.StatusNotFound
		case store.KindConflict:
			status = http.StatusConflict
		case store.KindUnauthorized:
			status = http.StatusUnauthorized
		}
		utils.Failure(c, status, opErr.Message, opErr.Errors)
		return
	}
	utils.InternalServerError(c, err.Error())
}

// canAccessPatient reports whether the session may read the given patient's
// records: admins always, patients only their own.
func canAccessPatient(c *gin.Context, patientID string) bool {
	role, _ := middleware.GetUserRoleFromContext(c)
	if role == models.RoleAdmin {
		return true
	}
	ownID, ok := middleware.GetPatientIDFromContext(c)
	return ok && ownID == patientID
}
