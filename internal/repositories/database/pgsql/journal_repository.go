package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bizledger/biz_ledger_app/internal/apperrors"
	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/biz_ledger_app/internal/core/ports/repositories"
	"github.com/bizledger/biz_ledger_app/internal/models"
	"github.com/bizledger/biz_ledger_app/internal/utils/mapping"
	"github.com/bizledger/biz_ledger_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const entryColumns = `entry_id, business_id, entry_number, transaction_date, description, reference, status, total_debit, total_credit, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, entry_id, account_id, debit_amount, credit_amount, description, reference`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryWithTx
var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

func scanEntry(row pgx.Row) (*models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.BusinessID,
		&m.EntryNumber,
		&m.TransactionDate,
		&m.Description,
		&m.Reference,
		&m.Status,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanLine(row pgx.Row) (*models.JournalEntryLine, error) {
	var m models.JournalEntryLine
	err := row.Scan(
		&m.LineID,
		&m.EntryID,
		&m.AccountID,
		&m.DebitAmount,
		&m.CreditAmount,
		&m.Description,
		&m.Reference,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// saveEntryInTx inserts the entry header and queues all line inserts on tx.
func saveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	modelEntry := mapping.ToModelJournalEntry(entry)
	entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, entryQuery,
		modelEntry.EntryID,
		modelEntry.BusinessID,
		modelEntry.EntryNumber,
		modelEntry.TransactionDate,
		modelEntry.Description,
		modelEntry.Reference,
		modelEntry.Status,
		modelEntry.TotalDebit,
		modelEntry.TotalCredit,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: entry number %s already exists", apperrors.ErrDuplicate, modelEntry.EntryNumber)
		}
		return apperrors.NewAppError(500, "failed to insert journal entry "+modelEntry.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_entry_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, line := range entry.Lines {
		modelLine := mapping.ToModelJournalEntryLine(line)
		modelLine.EntryID = modelEntry.EntryID
		batch.Queue(lineQuery,
			modelLine.LineID,
			modelLine.EntryID,
			modelLine.AccountID,
			modelLine.DebitAmount,
			modelLine.CreditAmount,
			modelLine.Description,
			modelLine.Reference,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute line batch for entry "+modelEntry.EntryID, err)
	}
	return nil
}

// SaveEntry persists an entry and its lines atomically in its own transaction.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := saveEntryInTx(ctx, tx, entry); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveEntryTx persists an entry and its lines within an existing transaction.
func (r *PgxJournalRepository) SaveEntryTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	return saveEntryInTx(ctx, tx, entry)
}

// ReplaceEntry updates a draft entry's header and replaces all its lines.
func (r *PgxJournalRepository) ReplaceEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelEntry := mapping.ToModelJournalEntry(entry)
	updateQuery := `
		UPDATE journal_entries
		SET transaction_date = $1, description = $2, reference = $3, total_debit = $4, total_credit = $5, last_updated_at = $6, last_updated_by = $7
		WHERE business_id = $8 AND entry_id = $9 AND status = 'DRAFT';
	`
	tag, err := tx.Exec(ctx, updateQuery,
		modelEntry.TransactionDate,
		modelEntry.Description,
		modelEntry.Reference,
		modelEntry.TotalDebit,
		modelEntry.TotalCredit,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
		modelEntry.BusinessID,
		modelEntry.EntryID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update draft entry "+modelEntry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_entry_lines WHERE entry_id = $1;`, modelEntry.EntryID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines for draft entry "+modelEntry.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_entry_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, line := range entry.Lines {
		modelLine := mapping.ToModelJournalEntryLine(line)
		modelLine.EntryID = modelEntry.EntryID
		batch.Queue(lineQuery,
			modelLine.LineID,
			modelLine.EntryID,
			modelLine.AccountID,
			modelLine.DebitAmount,
			modelLine.CreditAmount,
			modelLine.Description,
			modelLine.Reference,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to replace lines for draft entry "+modelEntry.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

// UpdateEntryStatus transitions an entry's status.
func (r *PgxJournalRepository) UpdateEntryStatus(ctx context.Context, businessID string, entryID string, status domain.JournalStatus, userID string, now time.Time) error {
	return updateEntryStatus(ctx, r.Pool, businessID, entryID, status, userID, now)
}

// UpdateEntryStatusTx transitions an entry's status within an existing transaction.
func (r *PgxJournalRepository) UpdateEntryStatusTx(ctx context.Context, tx pgx.Tx, businessID string, entryID string, status domain.JournalStatus, userID string, now time.Time) error {
	return updateEntryStatus(ctx, tx, businessID, entryID, status, userID, now)
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func updateEntryStatus(ctx context.Context, db execer, businessID, entryID string, status domain.JournalStatus, userID string, now time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE business_id = $4 AND entry_id = $5;
	`
	tag, err := db.Exec(ctx, query, string(status), now, userID, businessID, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindEntryByID retrieves a journal entry (without lines) by ID.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, businessID string, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE business_id = $1 AND entry_id = $2;
	`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, businessID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by ID "+entryID, err)
	}
	entry := mapping.ToDomainJournalEntry(*m)
	return &entry, nil
}

// FindLinesByEntryID retrieves all lines of a single journal entry.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM journal_entry_lines
		WHERE entry_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	lines := []models.JournalEntryLine{}
	for rows.Next() {
		m, err := scanLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for entry "+entryID, err)
		}
		lines = append(lines, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for entry "+entryID, err)
	}
	return mapping.ToDomainJournalEntryLineSlice(lines), nil
}

// FindLinesByEntryIDs retrieves lines for multiple entries, grouped by entry ID.
func (r *PgxJournalRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalEntryLine, error) {
	if len(entryIDs) == 0 {
		return map[string][]domain.JournalEntryLine{}, nil
	}
	query := `
		SELECT ` + lineColumns + `
		FROM journal_entry_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entries", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.JournalEntryLine, len(entryIDs))
	for rows.Next() {
		m, err := scanLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row", err)
		}
		result[m.EntryID] = append(result[m.EntryID], mapping.ToDomainJournalEntryLine(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows", err)
	}
	return result, nil
}

// ListEntriesByBusiness retrieves a paginated list of entries using
// token-based pagination ordered by transaction date descending.
func (r *PgxJournalRepository) ListEntriesByBusiness(ctx context.Context, businessID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE business_id = $1
	`
	// Ordering must be stable: transaction_date DESC with created_at as tie-breaker.
	orderByClause := `ORDER BY transaction_date DESC, created_at DESC`

	args := []interface{}{businessID}
	query := baseQuery

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (transaction_date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list journal entries for business "+businessID, err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	var nextTokenVal *string
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		nextTokenVal = &token
		entries = entries[:limit]
	}

	result := make([]domain.JournalEntry, len(entries))
	for i, m := range entries {
		result[i] = mapping.ToDomainJournalEntry(m)
	}
	return result, nextTokenVal, nil
}

// SumPostedLinesByAccount returns the debit and credit totals over POSTED
// entry lines hitting the account, optionally bounded by an as-of date.
func (r *PgxJournalRepository) SumPostedLinesByAccount(ctx context.Context, businessID string, accountID string, asOf *time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(l.debit_amount), 0), COALESCE(SUM(l.credit_amount), 0)
		FROM journal_entry_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE e.business_id = $1 AND l.account_id = $2 AND e.status = 'POSTED'
	`
	args := []interface{}{businessID, accountID}
	if asOf != nil {
		query += ` AND e.transaction_date <= $3`
		args = append(args, *asOf)
	}
	query += ";"

	var totalDebit, totalCredit decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, args...).Scan(&totalDebit, &totalCredit)
	if err != nil {
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to sum posted lines for account "+accountID, err)
	}
	return totalDebit, totalCredit, nil
}

// HasLinesForAccount reports whether any journal line references the account.
func (r *PgxJournalRepository) HasLinesForAccount(ctx context.Context, businessID string, accountID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM journal_entry_lines l
			JOIN journal_entries e ON l.entry_id = e.entry_id
			WHERE e.business_id = $1 AND l.account_id = $2
		);
	`
	var exists bool
	err := r.Pool.QueryRow(ctx, query, businessID, accountID).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check lines for account "+accountID, err)
	}
	return exists, nil
}
