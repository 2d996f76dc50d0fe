// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"furnishop/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// SessionUsecase owns the account registry and the single active session of this client.
//
// Login and Signup report expected failures (bad credentials, duplicate email)
// through the boolean; the error is reserved for storage failures.
type SessionUsecase interface {
	// Init rehydrates the registry and the session from the durable store.
	Init(ctx context.Context) error

	Login(ctx context.Context, input LoginInput) (bool, error)
	Signup(ctx context.Context, input SignupInput) (bool, error)

	// Logout clears the session. Calling it without a session is a no-op.
	Logout(ctx context.Context) error

	// CurrentUser returns a copy of the session, or nil when nobody is logged in.
	CurrentUser(ctx context.Context) *entity.User
	IsAdmin(ctx context.Context) bool

	// ListUsers returns the public view of every registered account.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
