package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/Shrinila/productify-backend/internal/core/domain"
	"github.com/Shrinila/productify-backend/internal/core/ports"
)

const mysqlErrDuplicateEntry = 1062

const (
	insertAccountQuery = `
INSERT INTO accounts (name, email, credential_hash, created_at)
VALUES (?, ?, ?, ?);
`

	findAccountByEmailQuery = `
SELECT * FROM accounts WHERE email = ? LIMIT 1;
`
)

type AccountRepository struct {
	db *sqlx.DB
}

type accountRow struct {
	ID             uint64    `db:"id"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	CredentialHash string    `db:"credential_hash"`
	CreatedAt      time.Time `db:"created_at"`
}

var _ ports.AccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, input domain.CreateAccountInput) (domain.Account, error) {
	createdAt := time.Now().UTC().Truncate(time.Second)

	result, err := r.db.ExecContext(ctx, insertAccountQuery, input.Name, input.Email, input.CredentialHash, createdAt)
	if err != nil {
		// The unique index on email is the authoritative guard for the
		// check-then-insert race on signup.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return domain.Account{}, domain.ErrDuplicateEmail
		}
		return domain.Account{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Account{}, err
	}

	return domain.Account{
		ID:             uint64(id),
		Name:           input.Name,
		Email:          input.Email,
		CredentialHash: input.CredentialHash,
		CreatedAt:      createdAt,
	}, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (domain.Account, error) {
	var row accountRow
	if err := r.db.GetContext(ctx, &row, findAccountByEmailQuery, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.ErrAccountNotFound
		}
		return domain.Account{}, err
	}

	return mapAccountRowToDomainAccount(row), nil
}

func mapAccountRowToDomainAccount(row accountRow) domain.Account {
	return domain.Account{
		ID:             row.ID,
		Name:           row.Name,
		Email:          row.Email,
		CredentialHash: row.CredentialHash,
		CreatedAt:      row.CreatedAt,
	}
}
