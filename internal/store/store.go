package store

import (
	"context"
	"errors"

	"userbase/internal/models"
)

// ErrNotFound is returned by lookups that match no user document.
var ErrNotFound = errors.New("user not found")

// ProfileUpdate is the whitelist of fields a partial user update may touch.
// Nil fields are left untouched; session fields and the password are not
// reachable through it.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Gender    *string
	PhoneNo   *string
	Email     *string
	DOB       *string
	Address   *[]models.Address
}

// UserStore is the storage capability the auth service and the handlers
// depend on. The session transitions are single conditional writes: they
// report whether the filter matched, so a concurrent login/logout/refresh
// for the same user cannot interleave into an inconsistent
// isLogin/refreshToken pair.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByIDAndToken(ctx context.Context, id int64, refreshToken string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) (bool, error)

	// SetSession marks the user logged in with the given refresh token.
	SetSession(ctx context.Context, id int64, refreshToken string) (bool, error)
	// RotateSession replaces the current refresh token, matching on the
	// previous one.
	RotateSession(ctx context.Context, id int64, current, next string) (bool, error)
	// ClearSession logs the user out, matching on the current token.
	ClearSession(ctx context.Context, id int64, current string) (bool, error)

	Delete(ctx context.Context, id int64) (bool, error)
}
