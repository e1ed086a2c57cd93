package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bizledger/biz_ledger_app/internal/apperrors"
	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/biz_ledger_app/internal/core/ports/repositories"
	"github.com/bizledger/biz_ledger_app/internal/models"
	"github.com/bizledger/biz_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const invoiceColumns = `invoice_id, business_id, customer_id, invoice_number, invoice_date, due_date, status, subtotal, tax_amount, total_amount, paid_amount, balance, currency_code, notes, is_recurring, recurring_type, next_due_date, created_at, created_by, last_updated_at, last_updated_by`

const invoiceItemColumns = `item_id, invoice_id, product_id, quantity, unit_price, tax_rate, tax_amount, line_total, description`

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryWithTx {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryWithTx
var _ portsrepo.InvoiceRepositoryWithTx = (*PgxInvoiceRepository)(nil)

func scanInvoice(row pgx.Row) (*models.Invoice, error) {
	var m models.Invoice
	var recurringType sql.NullString
	var nextDueDate sql.NullTime
	err := row.Scan(
		&m.InvoiceID,
		&m.BusinessID,
		&m.CustomerID,
		&m.InvoiceNumber,
		&m.InvoiceDate,
		&m.DueDate,
		&m.Status,
		&m.Subtotal,
		&m.TaxAmount,
		&m.TotalAmount,
		&m.PaidAmount,
		&m.Balance,
		&m.CurrencyCode,
		&m.Notes,
		&m.IsRecurring,
		&recurringType,
		&nextDueDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if recurringType.Valid {
		m.RecurringType = &recurringType.String
	}
	if nextDueDate.Valid {
		t := nextDueDate.Time
		m.NextDueDate = &t
	}
	return &m, nil
}

// SaveInvoiceTx persists an invoice and its items within an existing transaction.
func (r *PgxInvoiceRepository) SaveInvoiceTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	modelInv := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := tx.Exec(ctx, query,
		modelInv.InvoiceID,
		modelInv.BusinessID,
		modelInv.CustomerID,
		modelInv.InvoiceNumber,
		modelInv.InvoiceDate,
		modelInv.DueDate,
		modelInv.Status,
		modelInv.Subtotal,
		modelInv.TaxAmount,
		modelInv.TotalAmount,
		modelInv.PaidAmount,
		modelInv.Balance,
		modelInv.CurrencyCode,
		modelInv.Notes,
		modelInv.IsRecurring,
		modelInv.RecurringType,
		modelInv.NextDueDate,
		modelInv.CreatedAt,
		modelInv.CreatedBy,
		modelInv.LastUpdatedAt,
		modelInv.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: invoice number %s already exists", apperrors.ErrDuplicate, modelInv.InvoiceNumber)
		}
		return apperrors.NewAppError(500, "failed to insert invoice "+modelInv.InvoiceID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO invoice_items (` + invoiceItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, item := range invoice.Items {
		modelItem := mapping.ToModelInvoiceItem(item)
		modelItem.InvoiceID = modelInv.InvoiceID
		batch.Queue(itemQuery,
			modelItem.ItemID,
			modelItem.InvoiceID,
			modelItem.ProductID,
			modelItem.Quantity,
			modelItem.UnitPrice,
			modelItem.TaxRate,
			modelItem.TaxAmount,
			modelItem.LineTotal,
			modelItem.Description,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute item batch for invoice "+modelInv.InvoiceID, err)
	}
	return nil
}

// SaveInvoice persists an invoice and its items in its own transaction.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.SaveInvoiceTx(ctx, tx, invoice); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

const updateInvoiceQuery = `
	UPDATE invoices
	SET status = $1, subtotal = $2, tax_amount = $3, total_amount = $4, paid_amount = $5, balance = $6, notes = $7, is_recurring = $8, recurring_type = $9, next_due_date = $10, last_updated_at = $11, last_updated_by = $12
	WHERE business_id = $13 AND invoice_id = $14;
`

func updateInvoice(ctx context.Context, db execer, invoice domain.Invoice) error {
	modelInv := mapping.ToModelInvoice(invoice)
	tag, err := db.Exec(ctx, updateInvoiceQuery,
		modelInv.Status,
		modelInv.Subtotal,
		modelInv.TaxAmount,
		modelInv.TotalAmount,
		modelInv.PaidAmount,
		modelInv.Balance,
		modelInv.Notes,
		modelInv.IsRecurring,
		modelInv.RecurringType,
		modelInv.NextDueDate,
		modelInv.LastUpdatedAt,
		modelInv.LastUpdatedBy,
		modelInv.BusinessID,
		modelInv.InvoiceID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice "+modelInv.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateInvoice updates an invoice's header fields (not items).
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	return updateInvoice(ctx, r.Pool, invoice)
}

// UpdateInvoiceTx updates an invoice's header fields within an existing transaction.
func (r *PgxInvoiceRepository) UpdateInvoiceTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	return updateInvoice(ctx, tx, invoice)
}

// FindInvoiceByID retrieves an invoice (without items) by ID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, businessID string, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE business_id = $1 AND invoice_id = $2;
	`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, businessID, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by ID "+invoiceID, err)
	}
	inv := mapping.ToDomainInvoice(*m)
	return &inv, nil
}

// FindItemsByInvoiceID retrieves all items of an invoice.
func (r *PgxInvoiceRepository) FindItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	query := `
		SELECT ` + invoiceItemColumns + `
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY item_id;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items for invoice "+invoiceID, err)
	}
	defer rows.Close()

	items := []models.InvoiceItem{}
	for rows.Next() {
		var m models.InvoiceItem
		err := rows.Scan(
			&m.ItemID,
			&m.InvoiceID,
			&m.ProductID,
			&m.Quantity,
			&m.UnitPrice,
			&m.TaxRate,
			&m.TaxAmount,
			&m.LineTotal,
			&m.Description,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan item row for invoice "+invoiceID, err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating item rows for invoice "+invoiceID, err)
	}
	return mapping.ToDomainInvoiceItemSlice(items), nil
}

// ListInvoices retrieves a paginated list of invoices for a business.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, businessID string, limit int, offset int) ([]domain.Invoice, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE business_id = $1
		ORDER BY invoice_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list invoices for business "+businessID, err)
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		invoices = append(invoices, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice rows", err)
	}
	return mapping.ToDomainInvoiceSlice(invoices), nil
}

// ListOpenInvoicesByCustomer retrieves a customer's invoices that still carry
// an open balance.
func (r *PgxInvoiceRepository) ListOpenInvoicesByCustomer(ctx context.Context, businessID string, customerID string) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE business_id = $1 AND customer_id = $2 AND balance > 0 AND status IN ('SENT', 'OVERDUE')
		ORDER BY due_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, customerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list open invoices for customer "+customerID, err)
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		invoices = append(invoices, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice rows", err)
	}
	return mapping.ToDomainInvoiceSlice(invoices), nil
}

// ListDueRecurringInvoices retrieves recurring invoice templates whose next
// due date is at or before asOf.
func (r *PgxInvoiceRepository) ListDueRecurringInvoices(ctx context.Context, businessID string, asOf time.Time) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE business_id = $1 AND is_recurring = TRUE AND next_due_date IS NOT NULL AND next_due_date <= $2 AND status != 'CANCELLED'
		ORDER BY next_due_date;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list due recurring invoices for business "+businessID, err)
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan recurring invoice row", err)
		}
		invoices = append(invoices, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating recurring invoice rows", err)
	}
	return mapping.ToDomainInvoiceSlice(invoices), nil
}
