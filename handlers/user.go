package handlers

import (
	"net/http"

	"mindwell/middleware"
	"mindwell/services/user"

	"github.com/gin-gonic/gin"
)

// GetMeHandler returns the authenticated user's account.
func GetMeHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, err := svc.GetUser(c.GetString(middleware.ContextUserID))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, usr)
	}
}

// UpdateMeHandler updates the authenticated user's name or photo.
func UpdateMeHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name     string `json:"name"`
			PhotoURL string `json:"photoUrl"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		usr, err := svc.UpdateUser(c.GetString(middleware.ContextUserID), req.Name, req.PhotoURL)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, usr)
	}
}

// DeleteMeHandler removes the authenticated user's account and data.
func DeleteMeHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteUser(c.GetString(middleware.ContextUserID)); err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
	}
}
