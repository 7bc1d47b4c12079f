package services

import (
	"errors"
	"fmt"

	"ecolearn/internal/models"
	"ecolearn/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// UpdateProfileInput lists the only fields a profile update may change.
// Role and password are deliberately absent.
type UpdateProfileInput struct {
	ID         string `json:"id" validate:"required,nonblank"`
	Email      string `json:"email" validate:"required,nonblank,email,max=255"`
	Name       string `json:"name" validate:"max=255"`
	SchoolName string `json:"schoolName" validate:"max=255"`
}

// ProfileService updates user profiles.
type ProfileService struct {
	userRepo repositories.UserRepository
	validate *validator.Validate
}

// NewProfileService creates a new ProfileService.
func NewProfileService(userRepo repositories.UserRepository) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		validate: newValidator(),
	}
}

// UpdateProfile merges the provided fields into the stored user and replaces
// the record. There is no version check, so concurrent updates race and the
// last write wins.
func (s *ProfileService) UpdateProfile(in UpdateProfileInput) (*models.User, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validateInput(s.validate, in, ErrMissingProfileKeys); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(in.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user %s: %w", in.ID, err)
	}

	email := in.Email
	if email != user.Email {
		other, err := s.userRepo.GetByEmail(email)
		switch {
		case err == nil && other.ID != user.ID:
			return nil, ErrEmailTaken
		case err != nil && !errors.Is(err, repositories.ErrNotFound):
			return nil, fmt.Errorf("failed to check email %s: %w", email, err)
		}
	}

	user.Email = email
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.SchoolName != "" {
		user.SchoolName = in.SchoolName
	}

	if err := s.userRepo.Replace(user); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}
	return user, nil
}
