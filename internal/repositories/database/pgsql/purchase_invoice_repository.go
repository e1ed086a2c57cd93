package pgsql

import (
	"context"
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

const purchaseInvoiceColumns = `purchase_invoice_id, business_id, vendor_id, invoice_number, invoice_date, due_date, status, subtotal, tax_amount, total_amount, paid_amount, balance, currency_code, notes, created_at, created_by, last_updated_at, last_updated_by`

const purchaseInvoiceItemColumns = `item_id, purchase_invoice_id, product_id, quantity, unit_cost, tax_rate, tax_amount, line_total, description`

type PgxPurchaseInvoiceRepository struct {
	BaseRepository
}

// newPgxPurchaseInvoiceRepository creates a new repository for vendor bill data.
func newPgxPurchaseInvoiceRepository(pool *pgxpool.Pool) portsrepo.PurchaseInvoiceRepositoryWithTx {
	return &PgxPurchaseInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPurchaseInvoiceRepository implements the port
var _ portsrepo.PurchaseInvoiceRepositoryWithTx = (*PgxPurchaseInvoiceRepository)(nil)

func scanPurchaseInvoice(row pgx.Row) (*models.PurchaseInvoice, error) {
	var m models.PurchaseInvoice
	err := row.Scan(
		&m.PurchaseInvoiceID,
		&m.BusinessID,
		&m.VendorID,
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

// SavePurchaseInvoiceTx persists a purchase invoice and its items within an
// existing transaction.
func (r *PgxPurchaseInvoiceRepository) SavePurchaseInvoiceTx(ctx context.Context, tx pgx.Tx, invoice domain.PurchaseInvoice) error {
	modelInv := mapping.ToModelPurchaseInvoice(invoice)
	query := `
		INSERT INTO purchase_invoices (` + purchaseInvoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := tx.Exec(ctx, query,
		modelInv.PurchaseInvoiceID,
		modelInv.BusinessID,
		modelInv.VendorID,
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
		modelInv.CreatedAt,
		modelInv.CreatedBy,
		modelInv.LastUpdatedAt,
		modelInv.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: purchase invoice number %s already exists", apperrors.ErrDuplicate, modelInv.InvoiceNumber)
		}
		return apperrors.NewAppError(500, "failed to insert purchase invoice "+modelInv.PurchaseInvoiceID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO purchase_invoice_items (` + purchaseInvoiceItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, item := range invoice.Items {
		modelItem := mapping.ToModelPurchaseInvoiceItem(item)
		modelItem.PurchaseInvoiceID = modelInv.PurchaseInvoiceID
		batch.Queue(itemQuery,
			modelItem.ItemID,
			modelItem.PurchaseInvoiceID,
			modelItem.ProductID,
			modelItem.Quantity,
			modelItem.UnitCost,
			modelItem.TaxRate,
			modelItem.TaxAmount,
			modelItem.LineTotal,
			modelItem.Description,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute item batch for purchase invoice "+modelInv.PurchaseInvoiceID, err)
	}
	return nil
}

const updatePurchaseInvoiceQuery = `
	UPDATE purchase_invoices
	SET status = $1, paid_amount = $2, balance = $3, notes = $4, last_updated_at = $5, last_updated_by = $6
	WHERE business_id = $7 AND purchase_invoice_id = $8;
`

func updatePurchaseInvoice(ctx context.Context, db execer, invoice domain.PurchaseInvoice) error {
	modelInv := mapping.ToModelPurchaseInvoice(invoice)
	tag, err := db.Exec(ctx, updatePurchaseInvoiceQuery,
		modelInv.Status,
		modelInv.PaidAmount,
		modelInv.Balance,
		modelInv.Notes,
		modelInv.LastUpdatedAt,
		modelInv.LastUpdatedBy,
		modelInv.BusinessID,
		modelInv.PurchaseInvoiceID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update purchase invoice "+modelInv.PurchaseInvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdatePurchaseInvoice updates a purchase invoice's header fields.
func (r *PgxPurchaseInvoiceRepository) UpdatePurchaseInvoice(ctx context.Context, invoice domain.PurchaseInvoice) error {
	return updatePurchaseInvoice(ctx, r.Pool, invoice)
}

// UpdatePurchaseInvoiceTx updates a purchase invoice's header fields within an
// existing transaction.
func (r *PgxPurchaseInvoiceRepository) UpdatePurchaseInvoiceTx(ctx context.Context, tx pgx.Tx, invoice domain.PurchaseInvoice) error {
	return updatePurchaseInvoice(ctx, tx, invoice)
}

// FindPurchaseInvoiceByID retrieves a purchase invoice (without items) by ID.
func (r *PgxPurchaseInvoiceRepository) FindPurchaseInvoiceByID(ctx context.Context, businessID string, purchaseInvoiceID string) (*domain.PurchaseInvoice, error) {
	query := `
		SELECT ` + purchaseInvoiceColumns + `
		FROM purchase_invoices
		WHERE business_id = $1 AND purchase_invoice_id = $2;
	`
	m, err := scanPurchaseInvoice(r.Pool.QueryRow(ctx, query, businessID, purchaseInvoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find purchase invoice by ID "+purchaseInvoiceID, err)
	}
	inv := mapping.ToDomainPurchaseInvoice(*m)
	return &inv, nil
}

// FindItemsByPurchaseInvoiceID retrieves all items of a purchase invoice.
func (r *PgxPurchaseInvoiceRepository) FindItemsByPurchaseInvoiceID(ctx context.Context, purchaseInvoiceID string) ([]domain.PurchaseInvoiceItem, error) {
	query := `
		SELECT ` + purchaseInvoiceItemColumns + `
		FROM purchase_invoice_items
		WHERE purchase_invoice_id = $1
		ORDER BY item_id;
	`
	rows, err := r.Pool.Query(ctx, query, purchaseInvoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items for purchase invoice "+purchaseInvoiceID, err)
	}
	defer rows.Close()

	items := []models.PurchaseInvoiceItem{}
	for rows.Next() {
		var m models.PurchaseInvoiceItem
		err := rows.Scan(
			&m.ItemID,
			&m.PurchaseInvoiceID,
			&m.ProductID,
			&m.Quantity,
			&m.UnitCost,
			&m.TaxRate,
			&m.TaxAmount,
			&m.LineTotal,
			&m.Description,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan item row for purchase invoice "+purchaseInvoiceID, err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating item rows for purchase invoice "+purchaseInvoiceID, err)
	}
	return mapping.ToDomainPurchaseInvoiceItemSlice(items), nil
}

// ListPurchaseInvoices retrieves a paginated list for a business.
func (r *PgxPurchaseInvoiceRepository) ListPurchaseInvoices(ctx context.Context, businessID string, limit int, offset int) ([]domain.PurchaseInvoice, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT ` + purchaseInvoiceColumns + `
		FROM purchase_invoices
		WHERE business_id = $1
		ORDER BY invoice_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list purchase invoices for business "+businessID, err)
	}
	defer rows.Close()

	invoices := []models.PurchaseInvoice{}
	for rows.Next() {
		m, err := scanPurchaseInvoice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan purchase invoice row", err)
		}
		invoices = append(invoices, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating purchase invoice rows", err)
	}
	return mapping.ToDomainPurchaseInvoiceSlice(invoices), nil
}
