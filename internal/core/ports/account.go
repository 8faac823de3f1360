package ports

import (
	"context"

	"github.com/Shrinila/productify-backend/internal/core/domain"
)

type AccountRepository interface {
	// Create persists a new account. The store's unique index on email is
	// the authoritative duplicate guard: a collision surfaces as
	// domain.ErrDuplicateEmail.
	Create(ctx context.Context, input domain.CreateAccountInput) (domain.Account, error)
	// FindByEmail returns domain.ErrAccountNotFound when no account uses
	// the address.
	FindByEmail(ctx context.Context, email string) (domain.Account, error)
}

type AccountService interface {
	Signup(ctx context.Context, name, email, password string) error
	// Login verifies the credentials and returns the public account
	// projection together with a signed session token.
	Login(ctx context.Context, email, password string) (domain.AccountProfile, string, error)
}
