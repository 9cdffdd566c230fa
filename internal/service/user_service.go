package service

import (
	"context"
	"errors"
	"strings"

	"github.com/techTenzen/VTalk/internal/models"
	"github.com/techTenzen/VTalk/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

type CreateUserInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Gender string `json:"gender"`
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateOrFetch registers a user, or returns the existing account when the
// email is already known. The bool reports whether a new row was created.
func (s *UserService) CreateOrFetch(ctx context.Context, in CreateUserInput) (*models.User, bool, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return nil, false, models.NewFieldValidationError(missing...)
	}
	if !strings.Contains(in.Email, "@") {
		return nil, false, models.NewValidationError("Invalid email address")
	}
	if in.Gender != "" && !models.IsValidGender(in.Gender) {
		return nil, false, models.NewValidationError("Invalid gender")
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err == nil {
		return existing, false, nil
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeNotFound {
		return nil, false, err
	}

	user := &models.User{Name: in.Name, Email: in.Email, Gender: in.Gender}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	if id == 0 {
		return nil, models.NewValidationError("Invalid user id")
	}
	return s.userRepo.GetByID(ctx, id)
}
