package pgsql

import (
	"context"
	"errors"

	"github.com/clubledger/backend/internal/apperrors"
	"github.com/clubledger/backend/internal/core/domain"
	portsrepo "github.com/clubledger/backend/internal/core/ports/repositories"
	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart-of-accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepository
var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// EnsureSeedAccounts inserts any missing seed rows. Existing codes are left
// untouched, which keeps the operation idempotent across restarts.
func (r *PgxAccountRepository) EnsureSeedAccounts(ctx context.Context, seed []domain.SeedAccount) error {
	query := `
		INSERT INTO accounts (account_id, code, name, account_type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO NOTHING;
	`

	batch := &pgx.Batch{}
	for _, s := range seed {
		batch.Queue(query, uuid.NewString(), s.Code, s.Name, string(s.Type))
	}

	br := r.Pool.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to seed chart of accounts", err)
	}
	return nil
}

// FindAccountByCode retrieves the account seeded under the given code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `
		SELECT account_id, code, name, account_type, created_at
		FROM accounts
		WHERE code = $1;
	`

	var m models.Account
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&m.AccountID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUnknownAccount
		}
		return nil, apperrors.NewAppError(500, "failed to find account by code "+code, err)
	}

	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// ListAccounts returns every seeded account ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT account_id, code, name, account_type, created_at
		FROM accounts
		ORDER BY code;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.AccountID, &m.Code, &m.Name, &m.AccountType, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}

	return mapping.ToDomainAccountSlice(accounts), nil
}
