package service

import "furnishop/internal/domain/entity"

// SeedAccount is an account shipped with the release, password in clear text.
type SeedAccount struct {
	ID       int64
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// SeedProvider exposes the read-only data the store falls back to before anything was written.
type SeedProvider interface {
	// Products returns a fresh copy of the seed catalog.
	Products() []entity.Product

	// Accounts returns the accounts the registry starts with.
	Accounts() []SeedAccount
}
