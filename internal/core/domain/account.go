package domain

import (
	"strconv"
	"time"
)

// Account is a registered user identity. CredentialHash holds the bcrypt
// derivation of the password; the plaintext is never stored.
type Account struct {
	ID             uint64
	Name           string
	Email          string
	CredentialHash string
	CreatedAt      time.Time
}

// AccountProfile is the public projection of an account returned after
// login. It carries no credential material.
type AccountProfile struct {
	ID    string
	Name  string
	Email string
}

func (a Account) Profile() AccountProfile {
	return AccountProfile{
		ID:    strconv.FormatUint(a.ID, 10),
		Name:  a.Name,
		Email: a.Email,
	}
}

type CreateAccountInput struct {
	Name           string
	Email          string
	CredentialHash string
}
