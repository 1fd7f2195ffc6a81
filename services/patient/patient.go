package patient

import (
	"fmt"
	"time"

	patientRepo "mindwell/database/repository/patient"
	sessionRepo "mindwell/database/repository/session"
	userRepo "mindwell/database/repository/user"
	"mindwell/models"
)

// NotFoundError reports an unknown patient.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ForbiddenError reports a roster access the caller is not entitled to.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

// UpdateProfileRequest is the payload for editing a patient profile.
type UpdateProfileRequest struct {
	Gender           string   `json:"gender"`
	DateOfBirth      string   `json:"dateOfBirth"`
	HealthConditions []string `json:"healthConditions"`
	EmergencyContact string   `json:"emergencyContact"`
}

// PatientListing is a patient profile joined with account fields for the
// therapist-facing roster.
type PatientListing struct {
	models.PatientProfile
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// PatientService manages patient profiles and the roster view. Therapists
// see only patients they share at least one session with; admins see all.
type PatientService interface {
	GetProfile(userID string) (*models.PatientProfile, error)
	UpdateProfile(userID string, req UpdateProfileRequest) (*models.PatientProfile, error)
	// ListPatients returns the roster visible to the requester.
	ListPatients(requesterID string) ([]PatientListing, error)
	// GetPatient fetches one patient joined with account fields, applying
	// the same access rule. Patients may fetch themselves.
	GetPatient(requesterID, userID string) (*PatientListing, error)
}

// DefaultPatientService is the production implementation.
type DefaultPatientService struct {
	Users    userRepo.UserRepository
	Patients patientRepo.PatientRepository
	Sessions sessionRepo.SessionRepository
}

func (s *DefaultPatientService) GetProfile(userID string) (*models.PatientProfile, error) {
	profile, err := s.Patients.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load patient profile: %w", err)
	}
	if profile == nil {
		return nil, &NotFoundError{Message: "Patient not found"}
	}
	return profile, nil
}

func (s *DefaultPatientService) UpdateProfile(userID string, req UpdateProfileRequest) (*models.PatientProfile, error) {
	profile, err := s.Patients.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load patient profile: %w", err)
	}
	if profile == nil {
		// Profile creation at signup is best-effort; recreate on update.
		profile = &models.PatientProfile{UserID: userID, CreatedAt: time.Now()}
	}

	if req.Gender != "" {
		profile.Gender = req.Gender
	}
	if req.DateOfBirth != "" {
		profile.DateOfBirth = req.DateOfBirth
	}
	if req.HealthConditions != nil {
		profile.HealthConditions = req.HealthConditions
	}
	if req.EmergencyContact != "" {
		profile.EmergencyContact = req.EmergencyContact
	}
	profile.UpdatedAt = time.Now()

	if err := s.Patients.Upsert(profile); err != nil {
		return nil, fmt.Errorf("failed to update patient profile: %w", err)
	}
	return profile, nil
}

func (s *DefaultPatientService) ListPatients(requesterID string) ([]PatientListing, error) {
	requester, err := s.Users.GetByID(requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve requester: %w", err)
	}
	if requester == nil {
		return nil, &NotFoundError{Message: "User not found"}
	}

	var allowed map[string]bool
	switch requester.Role {
	case models.RoleAdmin:
		// No filter: admins see every patient.
	case models.RoleTherapist:
		allowed, err = s.sessionPatients(requesterID)
		if err != nil {
			return nil, err
		}
	default:
		return nil, &ForbiddenError{Message: "Not authorized to list patients"}
	}

	profiles, err := s.Patients.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	listings := make([]PatientListing, 0, len(profiles))
	for _, p := range profiles {
		if allowed != nil && !allowed[p.UserID] {
			continue
		}
		listings = append(listings, s.toListing(p))
	}
	return listings, nil
}

func (s *DefaultPatientService) GetPatient(requesterID, userID string) (*PatientListing, error) {
	if requesterID != userID {
		requester, err := s.Users.GetByID(requesterID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve requester: %w", err)
		}
		if requester == nil {
			return nil, &NotFoundError{Message: "User not found"}
		}
		switch requester.Role {
		case models.RoleAdmin:
		case models.RoleTherapist:
			shared, err := s.sessionPatients(requesterID)
			if err != nil {
				return nil, err
			}
			if !shared[userID] {
				return nil, &ForbiddenError{Message: "Not authorized to view this patient"}
			}
		default:
			return nil, &ForbiddenError{Message: "Not authorized to view this patient"}
		}
	}

	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	listing := s.toListing(*profile)
	return &listing, nil
}

// sessionPatients collects the patient IDs a therapist has sessions with,
// any status.
func (s *DefaultPatientService) sessionPatients(therapistID string) (map[string]bool, error) {
	sessions, err := s.Sessions.ListForUser(therapistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load therapist sessions: %w", err)
	}
	allowed := make(map[string]bool, len(sessions))
	for i := range sessions {
		allowed[sessions[i].PatientID] = true
	}
	return allowed, nil
}

func (s *DefaultPatientService) toListing(p models.PatientProfile) PatientListing {
	listing := PatientListing{PatientProfile: p}
	if user, err := s.Users.GetByID(p.UserID); err == nil && user != nil {
		listing.Name = user.Name
		listing.PhotoURL = user.PhotoURL
	}
	return listing
}
