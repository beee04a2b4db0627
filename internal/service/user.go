// Package service contains the business logic for the travel planner API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tripweaver/backend/internal/domain"
	"github.com/tripweaver/backend/internal/repo"
)

// UserService implements business logic for User operations.
type UserService struct {
	users repo.UserRepo
}

// NewUserService constructs a UserService backed by the provided UserRepo.
func NewUserService(users repo.UserRepo) *UserService {
	return &UserService{users: users}
}

// Create validates and persists a new user.
// Returns domain.ErrConflict if the email is already registered.
func (s *UserService) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if strings.TrimSpace(user.Email) == "" {
		return domain.User{}, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if !strings.Contains(user.Email, "@") {
		return domain.User{}, fmt.Errorf("%w: email is not valid", domain.ErrValidation)
	}
	if strings.TrimSpace(user.FullName) == "" {
		return domain.User{}, fmt.Errorf("%w: full_name is required", domain.ErrValidation)
	}

	result, err := s.users.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Create: %w", err)
	}
	return result, nil
}

// List returns all users, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.UserService.List: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}
