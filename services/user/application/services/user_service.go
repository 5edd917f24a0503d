package services

import (
	"context"
	"errors"
	"fmt"

	userdomain "github.com/ghuser/backoffice/services/user/domain"
	"github.com/ghuser/backoffice/services/user/domain/models"
	"github.com/ghuser/backoffice/services/user/domain/repositories"
)

// UserService is plain CRUD over the user record.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService returns a UserService wired with the given repository.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create persists a new user.
func (s *UserService) Create(ctx context.Context, firstName, lastName, email, phone string) (*models.User, error) {
	user := models.NewUser(firstName, lastName, email, phone)
	if err := s.repo.Insert(ctx, user); err != nil {
		if errors.Is(err, userdomain.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// Update replaces the user's fields and refreshes the audit trail.
func (s *UserService) Update(ctx context.Context, id int64, firstName, lastName, email, phone string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.notFound(id, err)
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.Email = email
	user.Phone = phone
	user.Touch()

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, userdomain.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// FindAll lists every user.
func (s *UserService) FindAll(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// FindByID retrieves one user.
func (s *UserService) FindByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.notFound(id, err)
	}
	return user, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.notFound(id, err)
	}
	return nil
}

func (s *UserService) notFound(id int64, err error) error {
	if errors.Is(err, userdomain.ErrUserNotFound) {
		return userdomain.NewError(userdomain.ErrUserNotFound, "User %d not found", id)
	}
	return fmt.Errorf("get user: %w", err)
}
