package handlers

import (
	"net/http"
	"strings"

	"mindwell/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SignupHandler handles account registration.
func SignupHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			zap.L().Warn("Invalid signup request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		result, err := svc.Signup(req)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

// LoginHandler handles login and returns a bearer token.
func LoginHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		result, err := svc.Login(req.Email, req.Password)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// LogoutHandler revokes the presented bearer token.
func LogoutHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing bearer token"})
			return
		}

		if err := svc.Logout(c.Request.Context(), token); err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
