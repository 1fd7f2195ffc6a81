package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindwell/config"
	"mindwell/database"
	chatRepoPkg "mindwell/database/repository/chat"
	moodRepoPkg "mindwell/database/repository/mood"
	patientRepoPkg "mindwell/database/repository/patient"
	sessionRepoPkg "mindwell/database/repository/session"
	therapistRepoPkg "mindwell/database/repository/therapist"
	userRepoPkg "mindwell/database/repository/user"
	"mindwell/handlers"
	"mindwell/middleware"
	"mindwell/routes"
	"mindwell/services/chat"
	ai "mindwell/services/intelligence"
	"mindwell/services/mood"
	"mindwell/services/patient"
	"mindwell/services/scheduling"
	"mindwell/services/therapist"
	"mindwell/services/user"
	"mindwell/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo()
	moodRepo := moodRepoPkg.NewMongoMoodRepo()
	therapistRepo := therapistRepoPkg.NewMongoTherapistRepo()
	patientRepo := patientRepoPkg.NewMongoPatientRepo()

	// services.
	userService := &user.DefaultUserService{
		Users:      userRepo,
		Patients:   patientRepo,
		Therapists: therapistRepo,
		Chats:      chatRepo,
		Moods:      moodRepo,
	}

	contextBuilder := &ai.DefaultContextBuilder{
		Users:    userRepo,
		Chats:    chatRepo,
		Moods:    moodRepo,
		Sessions: sessionRepo,
	}
	completionClient := ai.NewOpenRouterClient(
		config.AppConfig.OpenRouterAPIKey,
		config.AppConfig.OpenRouterBaseURL,
		config.AppConfig.AIModel,
		time.Duration(config.AppConfig.AITimeoutSeconds)*time.Second,
	)
	aiService := ai.NewDefaultAIService(contextBuilder, completionClient)

	chatService := &chat.DefaultChatService{
		Users: userRepo,
		Chats: chatRepo,
		AI:    aiService,
	}

	schedulingService := &scheduling.DefaultSchedulingService{
		Users:      userRepo,
		Therapists: therapistRepo,
		Sessions:   sessionRepo,
	}

	moodService := &mood.DefaultMoodService{
		Users:    userRepo,
		Moods:    moodRepo,
		Sessions: sessionRepo,
	}

	therapistService := &therapist.DefaultTherapistService{
		Users:      userRepo,
		Therapists: therapistRepo,
	}

	patientService := &patient.DefaultPatientService{
		Users:    userRepo,
		Patients: patientRepo,
		Sessions: sessionRepo,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		userService,
		chatService,
		schedulingService,
		moodService,
		therapistService,
		patientService,
	)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
