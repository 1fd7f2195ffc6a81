package handlers

import (
	"net/http"
	"time"

	"mindwell/middleware"
	"mindwell/models"
	"mindwell/services/scheduling"

	"github.com/gin-gonic/gin"
)

// AvailableSlotsHandler returns a therapist's free slots for a date given
// as ?date=YYYY-MM-DD.
func AvailableSlotsHandler(svc scheduling.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		dateStr := c.Query("date")
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing date, expected YYYY-MM-DD"})
			return
		}

		slots, err := svc.GetAvailableSlots(c.Param("therapistId"), date)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"slots": slots})
	}
}

// BookSessionHandler books a slot for the authenticated patient.
func BookSessionHandler(svc scheduling.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req scheduling.BookSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		session, err := svc.BookSession(c.GetString(middleware.ContextUserID), req)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, session)
	}
}

// ListSessionsHandler lists the caller's sessions in either role.
func ListSessionsHandler(svc scheduling.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions, err := svc.GetSessions(c.GetString(middleware.ContextUserID))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"sessions": sessions})
	}
}

// GetSessionHandler fetches one session by ID.
func GetSessionHandler(svc scheduling.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := svc.GetSession(c.Param("sessionId"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// CancelSessionHandler cancels a pending session with an optional reason.
func CancelSessionHandler(svc scheduling.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Reason string `json:"reason"`
		}
		_ = c.ShouldBindJSON(&req)

		session, err := svc.CancelSession(c.Param("sessionId"), req.Reason)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// UpdateSessionStatusHandler moves a pending session to a terminal state.
func UpdateSessionStatusHandler(svc scheduling.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status models.SessionStatus `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		session, err := svc.UpdateSessionStatus(c.Param("sessionId"), req.Status)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// UpdateSessionNotesHandler replaces the notes on a session.
func UpdateSessionNotesHandler(svc scheduling.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Notes string `json:"notes" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		session, err := svc.UpdateSessionNotes(c.Param("sessionId"), req.Notes)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}
