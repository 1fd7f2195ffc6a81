package therapist

import (
	"fmt"
	"time"

	therapistRepo "mindwell/database/repository/therapist"
	userRepo "mindwell/database/repository/user"
	"mindwell/models"
)

// ValidationError reports a rejected availability or profile update.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports an unknown therapist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// TherapistListing is a therapist profile joined with account fields for
// the public directory.
type TherapistListing struct {
	models.TherapistProfile
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// UpdateProfileRequest is the payload for editing a therapist profile.
type UpdateProfileRequest struct {
	Bio             string   `json:"bio"`
	Specializations []string `json:"specializations"`
	RatePerSession  float64  `json:"ratePerSession"`
}

// AvailabilityRequest replaces a therapist's weekly template and days off.
type AvailabilityRequest struct {
	WorkingHours map[string]models.WorkingHours `json:"workingHours" binding:"required"`
	DaysOff      []time.Time                    `json:"daysOff"`
}

// TherapistService manages therapist profiles and availability templates.
type TherapistService interface {
	GetProfile(userID string) (*models.TherapistProfile, error)
	UpdateProfile(userID string, req UpdateProfileRequest) (*models.TherapistProfile, error)
	// SetupAvailability validates and stores the weekly working-hours
	// template. Keys must be lowercase weekday names, times "HH:MM".
	SetupAvailability(userID string, req AvailabilityRequest) error
	// ListTherapists returns the public directory, profiles joined with
	// account name and photo.
	ListTherapists() ([]TherapistListing, error)
}

// DefaultTherapistService is the production implementation.
type DefaultTherapistService struct {
	Users      userRepo.UserRepository
	Therapists therapistRepo.TherapistRepository
}

var validWeekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

func (s *DefaultTherapistService) GetProfile(userID string) (*models.TherapistProfile, error) {
	profile, err := s.Therapists.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load therapist profile: %w", err)
	}
	if profile == nil {
		return nil, &NotFoundError{Message: "Therapist not found"}
	}
	return profile, nil
}

func (s *DefaultTherapistService) UpdateProfile(userID string, req UpdateProfileRequest) (*models.TherapistProfile, error) {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.Bio != "" {
		profile.Bio = req.Bio
	}
	if req.Specializations != nil {
		profile.Specializations = req.Specializations
	}
	if req.RatePerSession > 0 {
		profile.RatePerSession = req.RatePerSession
	}
	profile.UpdatedAt = time.Now()

	if err := s.Therapists.Upsert(profile); err != nil {
		return nil, fmt.Errorf("failed to update therapist profile: %w", err)
	}
	return profile, nil
}

func (s *DefaultTherapistService) SetupAvailability(userID string, req AvailabilityRequest) error {
	if _, err := s.GetProfile(userID); err != nil {
		return err
	}

	for day, hours := range req.WorkingHours {
		if !validWeekdays[day] {
			return &ValidationError{Message: fmt.Sprintf("Invalid weekday %q", day)}
		}
		start, err := time.Parse("15:04", hours.Start)
		if err != nil {
			return &ValidationError{Message: fmt.Sprintf("Invalid start time %q for %s", hours.Start, day)}
		}
		end, err := time.Parse("15:04", hours.End)
		if err != nil {
			return &ValidationError{Message: fmt.Sprintf("Invalid end time %q for %s", hours.End, day)}
		}
		if !end.After(start) {
			return &ValidationError{Message: fmt.Sprintf("End time must be after start time for %s", day)}
		}
	}

	if err := s.Therapists.UpdateAvailability(userID, req.WorkingHours, req.DaysOff); err != nil {
		return fmt.Errorf("failed to store availability: %w", err)
	}
	return nil
}

func (s *DefaultTherapistService) ListTherapists() ([]TherapistListing, error) {
	profiles, err := s.Therapists.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list therapists: %w", err)
	}

	listings := make([]TherapistListing, 0, len(profiles))
	for _, p := range profiles {
		listing := TherapistListing{TherapistProfile: p}
		if user, err := s.Users.GetByID(p.UserID); err == nil && user != nil {
			listing.Name = user.Name
			listing.PhotoURL = user.PhotoURL
		}
		listings = append(listings, listing)
	}
	return listings, nil
}
