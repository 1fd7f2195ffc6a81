package handlers

import (
	"net/http"

	"mindwell/middleware"
	"mindwell/services/mood"

	"github.com/gin-gonic/gin"
)

// AddMoodHandler logs a mood for the authenticated patient.
func AddMoodHandler(svc mood.MoodService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req mood.AddMoodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		entry, err := svc.AddMood(c.GetString(middleware.ContextUserID), req)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, entry)
	}
}

// ListMoodsHandler lists a patient's mood entries. Patients read their
// own; therapists read patients they share a session with.
func ListMoodsHandler(svc mood.MoodService) gin.HandlerFunc {
	return func(c *gin.Context) {
		requesterID := c.GetString(middleware.ContextUserID)
		patientID := c.Param("patientId")
		if patientID == "" {
			patientID = requesterID
		}

		moods, err := svc.GetMoods(requesterID, patientID)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"moods": moods})
	}
}

// GetMoodHandler fetches one mood entry, applying the same access rule.
func GetMoodHandler(svc mood.MoodService) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry, err := svc.GetMood(c.GetString(middleware.ContextUserID), c.Param("moodId"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}

// DeleteMoodHandler removes the caller's own mood entry.
func DeleteMoodHandler(svc mood.MoodService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteMood(c.GetString(middleware.ContextUserID), c.Param("moodId")); err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Mood entry deleted"})
	}
}
