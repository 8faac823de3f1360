package ports

// PasswordHasher derives and verifies one-way credential hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer issues and verifies signed, time-bound session tokens.
// Verify returns the account id the token was issued for.
type TokenIssuer interface {
	Issue(accountID string) (string, error)
	Verify(token string) (string, error)
}
