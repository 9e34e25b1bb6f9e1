package repository

import (
	"context"
	"errors"

	"account-service/internal/domain"
)

// ErrNotFound is returned when no account matches the given email or id.
var ErrNotFound = errors.New("account not found")

// ErrDuplicateEmail is returned by Create when the email is already taken.
// The UNIQUE constraint on email is the enforcement point: callers that
// pre-check must still handle this error for concurrent registrations.
var ErrDuplicateEmail = errors.New("email already registered")

// AccountUpdate carries the mutable profile fields for a partial update.
// A nil field is left untouched.
type AccountUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

// AccountRepository defines persistence operations for Account entities.
type AccountRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, account *domain.Account) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	Update(ctx context.Context, id int64, update AccountUpdate) (*domain.Account, error)
	Delete(ctx context.Context, id int64) error
}
