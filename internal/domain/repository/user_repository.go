package repository

import (
	"context"
	"errors"

	"github.com/danuartha/auth-service/internal/domain/entity"
)

var (
	// ErrNotFound is returned by lookups when no user matches.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken is returned by Create when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository defines the interface for user persistence. Email
// uniqueness is enforced by the store, not by callers.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
}
