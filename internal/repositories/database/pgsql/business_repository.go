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

const businessColumns = `business_id, business_name, currency_code, tax_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxBusinessRepository struct {
	BaseRepository
}

// newPgxBusinessRepository creates a new repository for business (tenant) data.
func newPgxBusinessRepository(pool *pgxpool.Pool) portsrepo.BusinessRepositoryWithTx {
	return &PgxBusinessRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBusinessRepository implements portsrepo.BusinessRepositoryWithTx
var _ portsrepo.BusinessRepositoryWithTx = (*PgxBusinessRepository)(nil)

func scanBusiness(row pgx.Row) (*models.Business, error) {
	var m models.Business
	var taxID sql.NullString
	err := row.Scan(
		&m.BusinessID,
		&m.BusinessName,
		&m.CurrencyCode,
		&taxID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if taxID.Valid {
		m.TaxID = taxID.String
	}
	return &m, nil
}

// SaveBusinessTx persists a business within an existing transaction.
func (r *PgxBusinessRepository) SaveBusinessTx(ctx context.Context, tx pgx.Tx, business domain.Business) error {
	m := mapping.ToModelBusiness(business)
	query := `
		INSERT INTO businesses (` + businessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	var taxID sql.NullString
	if m.TaxID != "" {
		taxID = sql.NullString{String: m.TaxID, Valid: true}
	}
	_, err := tx.Exec(ctx, query,
		m.BusinessID, m.BusinessName, m.CurrencyCode, taxID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: business %s already exists", apperrors.ErrDuplicate, m.BusinessID)
		}
		return apperrors.NewAppError(500, "failed to insert business "+m.BusinessID, err)
	}
	return nil
}

// SaveUserBusinessTx persists a membership row within an existing transaction.
func (r *PgxBusinessRepository) SaveUserBusinessTx(ctx context.Context, tx pgx.Tx, link domain.UserBusiness) error {
	m := mapping.ToModelUserBusiness(link)
	query := `
		INSERT INTO user_businesses (user_id, business_id, role, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		m.UserID, m.BusinessID, m.Role,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: user %s is already a member of business %s", apperrors.ErrDuplicate, m.UserID, m.BusinessID)
		}
		return apperrors.NewAppError(500, "failed to insert membership for user "+m.UserID, err)
	}
	return nil
}

// FindBusinessByID retrieves a business by ID.
func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `
		SELECT ` + businessColumns + `
		FROM businesses
		WHERE business_id = $1;
	`
	m, err := scanBusiness(r.Pool.QueryRow(ctx, query, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find business by ID "+businessID, err)
	}
	b := mapping.ToDomainBusiness(*m)
	return &b, nil
}

// FindUserBusiness retrieves the membership linking a user to a business.
func (r *PgxBusinessRepository) FindUserBusiness(ctx context.Context, userID string, businessID string) (*domain.UserBusiness, error) {
	query := `
		SELECT user_id, business_id, role, created_at, created_by, last_updated_at, last_updated_by
		FROM user_businesses
		WHERE user_id = $1 AND business_id = $2;
	`
	var m models.UserBusiness
	err := r.Pool.QueryRow(ctx, query, userID, businessID).Scan(
		&m.UserID,
		&m.BusinessID,
		&m.Role,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find membership for user "+userID, err)
	}
	link := mapping.ToDomainUserBusiness(m)
	return &link, nil
}

// ListBusinessesByUser retrieves all businesses a user belongs to.
func (r *PgxBusinessRepository) ListBusinessesByUser(ctx context.Context, userID string) ([]domain.Business, error) {
	query := `
		SELECT b.business_id, b.business_name, b.currency_code, b.tax_id, b.created_at, b.created_by, b.last_updated_at, b.last_updated_by
		FROM businesses b
		JOIN user_businesses ub ON b.business_id = ub.business_id
		WHERE ub.user_id = $1
		ORDER BY b.business_name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list businesses for user "+userID, err)
	}
	defer rows.Close()

	businesses := []domain.Business{}
	for rows.Next() {
		m, err := scanBusiness(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan business row", err)
		}
		businesses = append(businesses, mapping.ToDomainBusiness(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating business rows", err)
	}
	return businesses, nil
}
