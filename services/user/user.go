package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	chatRepo "mindwell/database/repository/chat"
	moodRepo "mindwell/database/repository/mood"
	patientRepo "mindwell/database/repository/patient"
	therapistRepo "mindwell/database/repository/therapist"
	userRepo "mindwell/database/repository/user"
	"mindwell/models"
	"mindwell/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// ValidationError reports a rejected signup or update.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthError reports failed credentials or an unusable token.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// NotFoundError reports an unknown user.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// SignupRequest is the payload for creating an account.
type SignupRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=8"`
	Role     models.Role `json:"role" binding:"required"`
	PhotoURL string      `json:"photoUrl"`
}

// AuthResult is a signed-in user with their bearer token.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService manages accounts, credentials and sessions.
type UserService interface {
	Signup(req SignupRequest) (*AuthResult, error)
	Login(email, password string) (*AuthResult, error)
	// Logout revokes the presented token until its natural expiry.
	Logout(ctx context.Context, token string) error
	GetUser(id string) (*models.User, error)
	UpdateUser(id string, name, photoURL string) (*models.User, error)
	// DeleteUser removes the account and everything keyed to it: profile,
	// chats and mood entries.
	DeleteUser(id string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Users      userRepo.UserRepository
	Patients   patientRepo.PatientRepository
	Therapists therapistRepo.TherapistRepository
	Chats      chatRepo.ChatRepository
	Moods      moodRepo.MoodRepository
}

func (s *DefaultUserService) Signup(req SignupRequest) (*AuthResult, error) {
	if !req.Role.Valid() {
		return nil, &ValidationError{Message: "Invalid role"}
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.Users.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, &ValidationError{Message: "An account with this email already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         req.Role,
		PhotoURL:     req.PhotoURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.createProfile(user); err != nil {
		// Account exists; profile creation can be retried on first update.
		utils.GetLogger().Warn("profile creation failed at signup",
			zap.String("userId", user.ID), zap.Error(err))
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role), tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *DefaultUserService) createProfile(user *models.User) error {
	now := time.Now()
	switch user.Role {
	case models.RolePatient:
		return s.Patients.Upsert(&models.PatientProfile{
			UserID:    user.ID,
			CreatedAt: now,
			UpdatedAt: now,
		})
	case models.RoleTherapist:
		return s.Therapists.Upsert(&models.TherapistProfile{
			UserID:    user.ID,
			Bio:       fmt.Sprintf("%s is a licensed therapist on the platform.", user.Name),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return nil
}

func (s *DefaultUserService) Login(email, password string) (*AuthResult, error) {
	user, err := s.Users.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if user == nil {
		return nil, &AuthError{Message: "Invalid email or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, &AuthError{Message: "Invalid email or password"}
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role), tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *DefaultUserService) Logout(ctx context.Context, token string) error {
	if _, _, err := utils.ExtractClaimsFromToken(token); err != nil {
		return &AuthError{Message: "Invalid token"}
	}
	if err := utils.RevokeToken(ctx, utils.HashToken(token), tokenLifetime); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *DefaultUserService) GetUser(id string) (*models.User, error) {
	user, err := s.Users.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, &NotFoundError{Message: "User not found"}
	}
	return user, nil
}

func (s *DefaultUserService) UpdateUser(id string, name, photoURL string) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if photoURL != "" {
		user.PhotoURL = photoURL
	}
	user.UpdatedAt = time.Now()

	if err := s.Users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *DefaultUserService) DeleteUser(id string) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}

	logger := utils.GetLogger()
	if err := s.Chats.DeleteForUser(id); err != nil {
		logger.Warn("failed to delete chats for user", zap.String("userId", id), zap.Error(err))
	}
	if err := s.Moods.DeleteForPatient(id); err != nil {
		logger.Warn("failed to delete moods for user", zap.String("userId", id), zap.Error(err))
	}
	switch user.Role {
	case models.RolePatient:
		if err := s.Patients.Delete(id); err != nil {
			logger.Warn("failed to delete patient profile", zap.String("userId", id), zap.Error(err))
		}
	case models.RoleTherapist:
		if err := s.Therapists.Delete(id); err != nil {
			logger.Warn("failed to delete therapist profile", zap.String("userId", id), zap.Error(err))
		}
	}

	if err := s.Users.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
