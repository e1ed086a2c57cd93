package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bizledger/biz_ledger_app/internal/apperrors"
	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/biz_ledger_app/internal/core/ports/repositories"
	"github.com/bizledger/biz_ledger_app/internal/models"
	"github.com/bizledger/biz_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, business_id, account_code, account_name, account_type, parent_account_id, description, is_debit, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart-of-accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryWithTx {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryWithTx
var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	var parentID sql.NullString
	err := row.Scan(
		&m.AccountID,
		&m.BusinessID,
		&m.AccountCode,
		&m.AccountName,
		&m.AccountType,
		&parentID,
		&m.Description,
		&m.IsDebit,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if parentID.Valid {
		m.ParentAccountID = parentID.String
	}
	return &m, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	var parentID sql.NullString
	if modelAcc.ParentAccountID != "" {
		parentID = sql.NullString{String: modelAcc.ParentAccountID, Valid: true}
	}

	_, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.BusinessID,
		modelAcc.AccountCode,
		modelAcc.AccountName,
		modelAcc.AccountType,
		parentID,
		modelAcc.Description,
		modelAcc.IsDebit,
		modelAcc.Status,
		modelAcc.CreatedAt,
		modelAcc.CreatedBy,
		modelAcc.LastUpdatedAt,
		modelAcc.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: account with code %s already exists", apperrors.ErrDuplicate, modelAcc.AccountCode)
		}
		return apperrors.NewAppError(500, "failed to save account "+modelAcc.AccountID, err)
	}
	return nil
}

// SaveAccountsTx inserts multiple accounts within an existing transaction.
// Used when seeding the default chart of accounts for a new business.
func (r *PgxAccountRepository) SaveAccountsTx(ctx context.Context, tx pgx.Tx, accounts []domain.Account) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	for _, account := range accounts {
		modelAcc := mapping.ToModelAccount(account)
		var parentID sql.NullString
		if modelAcc.ParentAccountID != "" {
			parentID = sql.NullString{String: modelAcc.ParentAccountID, Valid: true}
		}
		batch.Queue(query,
			modelAcc.AccountID,
			modelAcc.BusinessID,
			modelAcc.AccountCode,
			modelAcc.AccountName,
			modelAcc.AccountType,
			parentID,
			modelAcc.Description,
			modelAcc.IsDebit,
			modelAcc.Status,
			modelAcc.CreatedAt,
			modelAcc.CreatedBy,
			modelAcc.LastUpdatedAt,
			modelAcc.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: duplicate account code in batch", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to execute account insert batch", err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID within a business.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, businessID string, accountID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE business_id = $1 AND account_id = $2;
	`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, businessID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by ID "+accountID, err)
	}
	acc := mapping.ToDomainAccount(*m)
	return &acc, nil
}

// FindAccountByCode retrieves the non-deleted account with the given code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, businessID string, accountCode string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE business_id = $1 AND account_code = $2 AND status != 'DELETED';
	`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, businessID, accountCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by code "+accountCode, err)
	}
	acc := mapping.ToDomainAccount(*m)
	return &acc, nil
}

// FindDeletedAccountByCode retrieves the most recently deleted account with
// the given code, used to revive it instead of creating a duplicate.
func (r *PgxAccountRepository) FindDeletedAccountByCode(ctx context.Context, businessID string, accountCode string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE business_id = $1 AND account_code = $2 AND status = 'DELETED'
		ORDER BY last_updated_at DESC
		LIMIT 1;
	`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, businessID, accountCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find deleted account by code "+accountCode, err)
	}
	acc := mapping.ToDomainAccount(*m)
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs, keyed by ID.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE business_id = $1 AND account_id = ANY($2);
	`
	rows, err := r.Pool.Query(ctx, query, businessID, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		result[m.AccountID] = mapping.ToDomainAccount(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	if len(result) != len(accountIDs) {
		for _, id := range accountIDs {
			if _, ok := result[id]; !ok {
				return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
			}
		}
	}
	return result, nil
}

// FindAccountsByCodes retrieves multiple non-deleted accounts by code, keyed by code.
func (r *PgxAccountRepository) FindAccountsByCodes(ctx context.Context, businessID string, accountCodes []string) (map[string]domain.Account, error) {
	if len(accountCodes) == 0 {
		return map[string]domain.Account{}, nil
	}
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE business_id = $1 AND account_code = ANY($2) AND status != 'DELETED';
	`
	rows, err := r.Pool.Query(ctx, query, businessID, accountCodes)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts by codes", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Account, len(accountCodes))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		result[m.AccountCode] = mapping.ToDomainAccount(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return result, nil
}

// ListAccounts retrieves a paginated list of non-deleted accounts for a business.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, businessID string, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE business_id = $1 AND status != 'DELETED'
		ORDER BY account_code
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list accounts for business "+businessID, err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

// UpdateAccount updates an existing account's details and status.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET account_name = $1, description = $2, is_debit = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE business_id = $7 AND account_id = $8;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountName,
		modelAcc.Description,
		modelAcc.IsDebit,
		modelAcc.Status,
		modelAcc.LastUpdatedAt,
		modelAcc.LastUpdatedBy,
		modelAcc.BusinessID,
		modelAcc.AccountID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update account "+modelAcc.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
