package service

import (
	"context"
	"errors"

	"fittrack/internal/domain"
	"fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// ProfileUpdate carries the optional profile fields; nil means "leave as is".
type ProfileUpdate struct {
	Username *string
	Height   *float64
	Weight   *float64
	Goal     *string
}

// ProfileService reads and mutates the non-secret attributes of an account,
// plus its email and password, each under its own rule.
type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, upd ProfileUpdate) (*domain.User, error)
	ChangeEmail(ctx context.Context, userID primitive.ObjectID, newEmail, password string) (*domain.User, error)
	ChangePassword(ctx context.Context, userID primitive.ObjectID, currentPassword, newPassword string) error
}

type profileService struct {
	userRepo repository.UserRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

// GetProfile returns the account without its secret.
func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile validates each provided field independently and persists the
// result. A request carrying no recognized field is rejected.
func (s *profileService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, upd ProfileUpdate) (*domain.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	changed := false
	if upd.Username != nil {
		if err := validateUsername(*upd.Username); err != nil {
			return nil, err
		}
		user.Username = sanitizeText(*upd.Username)
		changed = true
	}
	if upd.Height != nil {
		if err := validatePositive("height", *upd.Height); err != nil {
			return nil, err
		}
		user.Height = *upd.Height
		changed = true
	}
	if upd.Weight != nil {
		if err := validatePositive("weight", *upd.Weight); err != nil {
			return nil, err
		}
		user.Weight = *upd.Weight
		changed = true
	}
	if upd.Goal != nil {
		if err := validateGoal(*upd.Goal); err != nil {
			return nil, err
		}
		user.Goal = sanitizeText(*upd.Goal)
		changed = true
	}

	if !changed {
		return nil, invalidField("", "no data to update")
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// ChangeEmail updates the account email after re-proving the password.
// Submitting the current email is always rejected, before the password is
// even looked at.
func (s *profileService) ChangeEmail(ctx context.Context, userID primitive.ObjectID, newEmail, password string) (*domain.User, error) {
	if err := validateEmail(newEmail); err != nil {
		return nil, err
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(newEmail)
	if email == user.Email {
		return nil, ErrSameEmail
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailInUse
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if len(password) < 8 {
		return nil, invalidField("password", "password must be at least 8 characters")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user.Email = email
	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// ChangePassword stores a fresh hash after re-proving the current password.
func (s *profileService) ChangePassword(ctx context.Context, userID primitive.ObjectID, currentPassword, newPassword string) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	if err := validatePassword(newPassword); err != nil {
		return err
	}

	// Reusing the current password is a conflict, not a validation problem.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(newPassword)); err == nil {
		return ErrSamePassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return ErrHashingFailed
	}

	user.PasswordHash = string(hashed)
	return s.userRepo.Update(ctx, user)
}

func (s *profileService) getUser(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
