package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"userbase/internal/models"
	"userbase/internal/store"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must not be able to tell which check failed.
	ErrInvalidCredentials = errors.New("invalid email/password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUpdateFailed       = errors.New("failed to update")
)

const defaultRole = "user"

// Service is the session/auth manager: it verifies credentials, issues
// token pairs and drives the per-user session state through its three
// transitions (login, logout, refresh).
type Service struct {
	users  store.UserStore
	tokens *TokenIssuer
}

func NewService(users store.UserStore, tokens *TokenIssuer) *Service {
	return &Service{users: users, tokens: tokens}
}

// RegisterParams is the raw user-creation payload, already validated.
type RegisterParams struct {
	FirstName string
	LastName  string
	Gender    string
	PhoneNo   string
	Email     string
	Password  string
	DOB       string
	Address   []models.Address
}

// Register hashes the password and persists a new user. Email uniqueness
// is left to the store's unique index.
func (s *Service) Register(ctx context.Context, p RegisterParams) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// The payload is stored verbatim; the email matches lookups exactly
	// as it was registered.
	user := &models.User{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Gender:    p.Gender,
		PhoneNo:   p.PhoneNo,
		Email:     p.Email,
		Password:  string(hash),
		DOB:       p.DOB,
		Address:   p.Address,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and opens a session: a fresh token pair
// is issued and the refresh token becomes the user's only valid one.
func (s *Service) Login(ctx context.Context, email, password string) (*models.TokenPair, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.tokens.Issue(user.ID, defaultRole)
	if err != nil {
		return nil, nil, fmt.Errorf("issue tokens: %w", err)
	}

	matched, err := s.users.SetSession(ctx, user.ID, pair.RefreshToken)
	if err != nil {
		return nil, nil, fmt.Errorf("set session: %w", err)
	}
	if !matched {
		return nil, nil, ErrUpdateFailed
	}

	user.IsLogin = true
	user.RefreshToken = pair.RefreshToken
	return pair, user, nil
}

// Logout closes the session identified by (id, refresh token). The clear
// is conditional on the token still being current, so a second logout with
// the same token reports the user as not found.
func (s *Service) Logout(ctx context.Context, id int64, token string) error {
	if _, err := s.users.FindByIDAndToken(ctx, id, token); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	matched, err := s.users.ClearSession(ctx, id, token)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if !matched {
		return ErrUpdateFailed
	}
	return nil
}

// Refresh rotates the session tokens: a new pair is issued and stored in a
// single write that matches on the presented token, which invalidates it.
func (s *Service) Refresh(ctx context.Context, id int64, token string) (*models.TokenPair, error) {
	pair, err := s.tokens.Issue(id, defaultRole)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	matched, err := s.users.RotateSession(ctx, id, token, pair.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("rotate session: %w", err)
	}
	if !matched {
		return nil, ErrInvalidToken
	}
	return pair, nil
}
