package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/harmonia/academy-backend/internal/model"
	"github.com/harmonia/academy-backend/internal/repository"
)

// ErrUserExists reports that a create-if-absent found an existing account.
var ErrUserExists = errors.New("user already exists")

// UserService handles account upserts and lookups.
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Upsert stores the profile under an email, creating the account if needed.
func (s *UserService) Upsert(ctx context.Context, u *model.User) error {
	return s.userRepo.Upsert(ctx, u)
}

// GetByEmail returns one user, or pgx.ErrNoRows when absent.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

// Instructors returns all users holding the instructor role.
func (s *UserService) Instructors(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListByRole(ctx, model.RoleInstructor)
}

// CreateIfAbsent inserts a user unless the email is already registered.
// The existence check is a preceding read, so two concurrent identical
// requests can both pass it; the primary key turns the lost race into an
// insert error that callers treat the same as ErrUserExists.
func (s *UserService) CreateIfAbsent(ctx context.Context, u *model.User) error {
	_, err := s.userRepo.GetByEmail(ctx, u.Email)
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	return s.userRepo.Insert(ctx, u)
}
