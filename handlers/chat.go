package handlers

import (
	"net/http"

	"mindwell/middleware"
	"mindwell/models"
	"mindwell/services/chat"

	"github.com/gin-gonic/gin"
)

// SendMessageHandler posts a message to any of the three chat types on
// behalf of the authenticated user.
func SendMessageHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Message    string          `json:"message" binding:"required"`
			ChatType   models.ChatType `json:"chatType" binding:"required"`
			ReceiverID string          `json:"receiverId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		senderID := c.GetString(middleware.ContextUserID)
		result, err := svc.SendMessage(c.Request.Context(), senderID, req.Message, req.ChatType, req.ReceiverID)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

// GetPatientTherapistChatsHandler returns the authenticated patient's
// conversation with the given therapist.
func GetPatientTherapistChatsHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		patientID := c.GetString(middleware.ContextUserID)
		history, err := svc.GetPeerChats(patientID, c.Param("therapistId"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, history)
	}
}

// GetTherapistPatientChatsHandler returns the authenticated therapist's
// conversation with the given patient.
func GetTherapistPatientChatsHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		therapistID := c.GetString(middleware.ContextUserID)
		history, err := svc.GetPeerChats(c.Param("patientId"), therapistID)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, history)
	}
}

// GetBotChatsHandler returns the caller's assistant conversation for the
// given chat type.
func GetBotChatsHandler(svc chat.ChatService, chatType models.ChatType) gin.HandlerFunc {
	return func(c *gin.Context) {
		history, err := svc.GetBotChats(c.GetString(middleware.ContextUserID), chatType)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, history)
	}
}

// MarkReadHandler bulk-marks messages addressed to the caller as read.
func MarkReadHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ChatType  models.ChatType `json:"chatType" binding:"required"`
			PartnerID string          `json:"partnerId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		count, err := svc.MarkMessagesAsRead(c.GetString(middleware.ContextUserID), req.ChatType, req.PartnerID)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"updatedCount": count})
	}
}

// UnreadCountHandler returns the caller's unread message count.
func UnreadCountHandler(svc chat.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := svc.GetUnreadCount(c.GetString(middleware.ContextUserID))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"unreadCount": count})
	}
}
