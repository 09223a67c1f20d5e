package services

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/lightoncampus/backend/internal/app/models"
	"github.com/lightoncampus/backend/internal/app/models/dto"
	"github.com/lightoncampus/backend/internal/app/repositories"
)

// ProfileService defines the interface for the current user's profile
type ProfileService interface {
	GetProfile(userID string) (dto.ProfileResponse, error)
	UpdateProfile(userID string, req dto.UpdateProfileRequest) (models.User, error)
}

// profileServiceImpl implements ProfileService
type profileServiceImpl struct {
	userRepo      *repositories.UserRepository
	courseService CourseService
	logger        zerolog.Logger
}

// NewProfileService creates a new ProfileService. Enrollment statistics
// come from the course engine by id lookup; profile state owns only the
// user record itself.
func NewProfileService(
	userRepo *repositories.UserRepository,
	courseService CourseService,
	logger zerolog.Logger,
) ProfileService {
	return &profileServiceImpl{
		userRepo:      userRepo,
		courseService: courseService,
		logger:        logger,
	}
}

// GetProfile returns the user joined with their enrollment statistics.
func (s *profileServiceImpl) GetProfile(userID string) (dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return dto.ProfileResponse{}, err
	}
	return dto.ProfileResponse{
		User:  user,
		Stats: s.courseService.EnrollmentStats(userID),
	}, nil
}

// UpdateProfile applies the provided fields to the user's own record.
// Blank names are ignored rather than erased; the id never changes.
func (s *profileServiceImpl) UpdateProfile(userID string, req dto.UpdateProfileRequest) (models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return models.User{}, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.Campus != nil {
		user.Campus = req.Campus
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.Avatar != nil && *req.Avatar != "" {
		user.Avatar = *req.Avatar
	}

	updated, err := s.userRepo.Update(user)
	if err != nil {
		return models.User{}, err
	}
	s.logger.Debug().Str("userID", userID).Msg("Profile updated")
	return updated, nil
}
