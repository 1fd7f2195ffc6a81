package routes

import (
	"net/http"
	"time"

	"mindwell/handlers"
	"mindwell/middleware"
	"mindwell/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterMoodRoutes(r, hb)
	RegisterTherapistRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MindWell"})
	})
}

// RegisterAuthRoutes registers signup, login and logout.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.Signup)
		api.POST("/login", hb.Login)

		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/logout", hb.Logout)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.GetMe)
		api.PUT("/me", hb.UpdateMe)
		api.DELETE("/me", hb.DeleteMe)
	}
}

// RegisterChatRoutes registers messaging endpoints for all three chat types.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/post", hb.SendMessage)
		api.GET("/patient-therapist/:therapistId", middleware.RequireRole(models.RolePatient), hb.GetPatientTherapistChats)
		api.GET("/therapist-patient/:patientId", middleware.RequireRole(models.RoleTherapist), hb.GetTherapistPatientChats)
		api.GET("/patient-bot", middleware.RequireRole(models.RolePatient), hb.GetPatientBotChats)
		api.GET("/therapist-bot", middleware.RequireRole(models.RoleTherapist), hb.GetTherapistBotChats)
		api.PATCH("/mark-read", hb.MarkRead)
		api.GET("/unread-count", hb.UnreadCount)
	}
}

// RegisterSessionRoutes registers slot discovery and booking endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/session")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/slots/:therapistId", hb.AvailableSlots)
		api.POST("/post", middleware.RequireRole(models.RolePatient), hb.BookSession)
		api.GET("/get", hb.ListSessions)
		api.GET("/:sessionId", hb.GetSession)
		api.PATCH("/:sessionId/cancel", hb.CancelSession)
		api.PATCH("/:sessionId/status", middleware.RequireRole(models.RoleTherapist, models.RoleAdmin), hb.UpdateSessionStatus)
		api.PATCH("/:sessionId/notes", middleware.RequireRole(models.RoleTherapist), hb.UpdateSessionNotes)
	}
}

// RegisterMoodRoutes registers mood tracking endpoints.
func RegisterMoodRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/mood")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/add", middleware.RequireRole(models.RolePatient), hb.AddMood)
		api.GET("", hb.ListMoods)
		api.GET("/patient/:patientId", middleware.RequireRole(models.RoleTherapist, models.RoleAdmin), hb.ListMoods)
		api.GET("/:moodId", hb.GetMood)
		api.DELETE("/:moodId", middleware.RequireRole(models.RolePatient), hb.DeleteMood)
	}
}

// RegisterTherapistRoutes registers the directory and therapist profile
// endpoints.
func RegisterTherapistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/therapists")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListTherapists)
		api.GET("/:therapistId", hb.GetTherapistProfile)
		api.PUT("/me", middleware.RequireRole(models.RoleTherapist), hb.UpdateTherapistProfile)
		api.PUT("/me/availability", middleware.RequireRole(models.RoleTherapist), hb.SetupAvailability)
	}
}

// RegisterPatientRoutes registers patient profile endpoints plus the
// roster views for therapists and admins.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", middleware.RequireRole(models.RoleTherapist, models.RoleAdmin), hb.ListPatients)
		api.GET("/me", middleware.RequireRole(models.RolePatient), hb.GetPatientProfile)
		api.PUT("/me", middleware.RequireRole(models.RolePatient), hb.UpdatePatientProfile)
		api.GET("/:userId", middleware.RequireRole(models.RoleTherapist, models.RoleAdmin), hb.GetPatient)
	}
}
