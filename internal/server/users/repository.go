package users

import (
	"context"
)

// Repository stores user accounts. Emails are unique, compared
// case-insensitively.
type Repository interface {
	// Create stores user and returns it with ID and CreatedAt set. A taken
	// email yields common.ErrAlreadyExists.
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
