package handlers

import (
	"net/http"

	"mindwell/middleware"
	"mindwell/services/therapist"

	"github.com/gin-gonic/gin"
)

// ListTherapistsHandler returns the public therapist directory.
func ListTherapistsHandler(svc therapist.TherapistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := svc.ListTherapists()
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"therapists": listings})
	}
}

// GetTherapistProfileHandler fetches one therapist's profile.
func GetTherapistProfileHandler(svc therapist.TherapistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("therapistId")
		if userID == "" {
			userID = c.GetString(middleware.ContextUserID)
		}

		profile, err := svc.GetProfile(userID)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdateTherapistProfileHandler edits the authenticated therapist's bio
// and specializations.
func UpdateTherapistProfileHandler(svc therapist.TherapistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req therapist.UpdateProfileRequest
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

// SetupAvailabilityHandler replaces the authenticated therapist's weekly
// working-hours template and day-off list.
func SetupAvailabilityHandler(svc therapist.TherapistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req therapist.AvailabilityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := svc.SetupAvailability(c.GetString(middleware.ContextUserID), req); err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
	}
}
