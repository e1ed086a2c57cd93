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

const paymentColumns = `payment_id, business_id, payment_number, payment_type, payment_method, amount, payment_date, customer_id, vendor_id, invoice_id, reference, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryWithTx
var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var m models.Payment
	var customerID, vendorID, invoiceID sql.NullString
	err := row.Scan(
		&m.PaymentID,
		&m.BusinessID,
		&m.PaymentNumber,
		&m.PaymentType,
		&m.PaymentMethod,
		&m.Amount,
		&m.PaymentDate,
		&customerID,
		&vendorID,
		&invoiceID,
		&m.Reference,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if customerID.Valid {
		m.CustomerID = customerID.String
	}
	if vendorID.Valid {
		m.VendorID = vendorID.String
	}
	if invoiceID.Valid {
		m.InvoiceID = invoiceID.String
	}
	return &m, nil
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// SavePaymentTx persists a payment within an existing transaction.
func (r *PgxPaymentRepository) SavePaymentTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	modelPay := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := tx.Exec(ctx, query,
		modelPay.PaymentID,
		modelPay.BusinessID,
		modelPay.PaymentNumber,
		modelPay.PaymentType,
		modelPay.PaymentMethod,
		modelPay.Amount,
		modelPay.PaymentDate,
		nullIfEmpty(modelPay.CustomerID),
		nullIfEmpty(modelPay.VendorID),
		nullIfEmpty(modelPay.InvoiceID),
		modelPay.Reference,
		modelPay.Notes,
		modelPay.CreatedAt,
		modelPay.CreatedBy,
		modelPay.LastUpdatedAt,
		modelPay.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: payment number %s already exists", apperrors.ErrDuplicate, modelPay.PaymentNumber)
		}
		return apperrors.NewAppError(500, "failed to insert payment "+modelPay.PaymentID, err)
	}
	return nil
}

// SaveMobileMoneyTransactionTx persists the provider-side record of a mobile
// money payment within the same transaction as the payment.
func (r *PgxPaymentRepository) SaveMobileMoneyTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.MobileMoneyTransaction) error {
	modelTxn := mapping.ToModelMobileMoneyTransaction(txn)
	query := `
		INSERT INTO mobile_money_transactions (transaction_id, payment_id, business_id, provider, phone_number, amount, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.PaymentID,
		modelTxn.BusinessID,
		modelTxn.Provider,
		modelTxn.PhoneNumber,
		modelTxn.Amount,
		modelTxn.Reference,
		modelTxn.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert mobile money transaction for payment "+modelTxn.PaymentID, err)
	}
	return nil
}

// FindPaymentByID retrieves a payment by ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, businessID string, paymentID string) (*domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE business_id = $1 AND payment_id = $2;
	`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, businessID, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment by ID "+paymentID, err)
	}
	p := mapping.ToDomainPayment(*m)
	return &p, nil
}

// ListPayments retrieves a paginated list of payments for a business.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, businessID string, limit int, offset int) ([]domain.Payment, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE business_id = $1
		ORDER BY payment_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list payments for business "+businessID, err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return mapping.ToDomainPaymentSlice(payments), nil
}

// ListPaymentsByInvoice retrieves all payments applied to an invoice.
func (r *PgxPaymentRepository) ListPaymentsByInvoice(ctx context.Context, businessID string, invoiceID string) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE business_id = $1 AND invoice_id = $2
		ORDER BY payment_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, invoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list payments for invoice "+invoiceID, err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return mapping.ToDomainPaymentSlice(payments), nil
}
