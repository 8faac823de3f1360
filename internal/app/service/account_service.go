package service

import (
	"context"
	"errors"

	"github.com/Shrinila/productify-backend/internal/core/domain"
	"github.com/Shrinila/productify-backend/internal/core/ports"
)

type AccountService struct {
	accountRepository ports.AccountRepository
	hasher            ports.PasswordHasher
	tokens            ports.TokenIssuer
}

func NewAccountService(accountRepository ports.AccountRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer) *AccountService {
	return &AccountService{
		accountRepository: accountRepository,
		hasher:            hasher,
		tokens:            tokens,
	}
}

// Signup creates an account for a previously unused email. The lookup is a
// fast path for a friendly message only; two concurrent signups can both
// pass it, and the unique index on email settles the race inside Create.
func (s *AccountService) Signup(ctx context.Context, name, email, password string) error {
	_, err := s.accountRepository.FindByEmail(ctx, email)
	if err == nil {
		return domain.ErrDuplicateEmail
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	_, err = s.accountRepository.Create(ctx, domain.CreateAccountInput{
		Name:           name,
		Email:          email,
		CredentialHash: hash,
	})
	return err
}

func (s *AccountService) Login(ctx context.Context, email, password string) (domain.AccountProfile, string, error) {
	account, err := s.accountRepository.FindByEmail(ctx, email)
	if err != nil {
		return domain.AccountProfile{}, "", err
	}

	if !s.hasher.Verify(password, account.CredentialHash) {
		return domain.AccountProfile{}, "", domain.ErrInvalidCredential
	}

	profile := account.Profile()
	token, err := s.tokens.Issue(profile.ID)
	if err != nil {
		return domain.AccountProfile{}, "", err
	}

	return profile, token, nil
}

var _ ports.AccountService = (*AccountService)(nil)
