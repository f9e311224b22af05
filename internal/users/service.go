package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Service coordinates user account operations on top of a Repo.
type Service struct {
	Repo Repo
}

// EnsureUser upserts the account for a fresh login and returns its current
// state. New accounts start with the default role.
func (s *Service) EnsureUser(ctx context.Context, email, fullName, pictureURL string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return User{}, errors.New("email is required")
	}
	user := User{
		Email:      email,
		FullName:   fullName,
		PictureURL: pictureURL,
		Role:       RoleUser,
	}
	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil {
		user.Role = existing.Role
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, fmt.Errorf("lookup user: %w", err)
	}
	if err := s.Repo.Upsert(ctx, user); err != nil {
		return User{}, err
	}
	return s.Repo.GetByEmail(ctx, email)
}

// Get returns the account for the given email.
func (s *Service) Get(ctx context.Context, email string) (User, error) {
	return s.Repo.GetByEmail(ctx, email)
}

// List returns all accounts ordered by email.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.Repo.List(ctx)
}
