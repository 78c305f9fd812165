package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/chris7683/fit-and-fix/internal/domain"
)

const minPasswordLength = 8

// AuthService orchestrates registration, login, and profile lookup. It
// validates input, consults the user store, and drives the password hasher
// and token service.
type AuthService struct {
	users  domain.UserRepository
	hasher *PasswordHasher
	tokens *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, hasher *PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// RegisterInput carries the registration request fields.
type RegisterInput struct {
	Name            string
	Email           string
	PhoneNumber     string
	Password        string
	ConfirmPassword string
	ProfileImageURL string
}

// Register validates input, stores the new user, and issues a token. The
// check order is externally observable and fixed: required fields, password
// confirmation, duplicate email, password strength.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, "", fmt.Errorf("%w: name, email, password, and confirm password are required", domain.ErrInvalidInput)
	}

	if in.Password != in.ConfirmPassword {
		return nil, "", domain.ErrPasswordMismatch
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, "", domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", fmt.Errorf("check existing email: %w", err)
	}

	if len(in.Password) < minPasswordLength {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters", domain.ErrWeakPassword, minPasswordLength)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:            in.Name,
		Email:           in.Email,
		PhoneNumber:     in.PhoneNumber,
		PasswordHash:    hash,
		ProfileImageURL: in.ProfileImageURL,
	}

	// The insert is optimistic: a concurrent registration can slip past the
	// pre-check, so a storage-level uniqueness violation maps to
	// ErrEmailExists as well.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			return nil, "", domain.ErrEmailExists
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(domain.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials and issues a token. An unknown email and a
// wrong password are deliberately the same failure, so callers cannot probe
// which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

// Profile loads the user a verified token points at. Returns ErrNotFound if
// the user has since disappeared from the store.
func (s *AuthService) Profile(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
