package handlers

import (
	"net/http"

	"mindwell/middleware"
	"mindwell/services/patient"

	"github.com/gin-gonic/gin"
)

// ListPatientsHandler returns the patient roster visible to the caller:
// every patient for admins, session partners for therapists.
func ListPatientsHandler(svc patient.PatientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		patients, err := svc.ListPatients(c.GetString(middleware.ContextUserID))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"patients": patients})
	}
}

// GetPatientHandler fetches one patient by user ID, subject to the same
// roster access rule.
func GetPatientHandler(svc patient.PatientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listing, err := svc.GetPatient(c.GetString(middleware.ContextUserID), c.Param("userId"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, listing)
	}
}

// GetPatientProfileHandler fetches the authenticated patient's profile.
func GetPatientProfileHandler(svc patient.PatientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := svc.GetProfile(c.GetString(middleware.ContextUserID))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdatePatientProfileHandler edits the authenticated patient's profile.
func UpdatePatientProfileHandler(svc patient.PatientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req patient.UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		profile, err := svc.UpdateProfile(c.GetString(middleware.ContextUserID), req)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
