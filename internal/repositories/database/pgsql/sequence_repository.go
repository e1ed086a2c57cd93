package pgsql

import (
	"context"

	"github.com/bizledger/biz_ledger_app/internal/apperrors"
	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/biz_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSequenceRepository struct {
	BaseRepository
}

// newPgxSequenceRepository creates a new repository for document number sequences.
func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSequenceRepository implements portsrepo.SequenceRepository
var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// The upsert increments the counter row atomically; the row lock taken by the
// update serializes concurrent callers, so two of them never see the same value.
const nextNumberQuery = `
	INSERT INTO document_sequences (business_id, document_kind, last_number)
	VALUES ($1, $2, 1)
	ON CONFLICT (business_id, document_kind)
	DO UPDATE SET last_number = document_sequences.last_number + 1
	RETURNING last_number;
`

// NextNumber atomically increments and returns the counter for the business
// and document kind.
func (r *PgxSequenceRepository) NextNumber(ctx context.Context, businessID string, kind domain.DocumentKind) (int64, error) {
	var n int64
	err := r.Pool.QueryRow(ctx, nextNumberQuery, businessID, string(kind)).Scan(&n)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to advance sequence "+string(kind)+" for business "+businessID, err)
	}
	return n, nil
}

// NextNumberTx does the same within an existing transaction, so the number is
// rolled back together with the document that consumed it.
func (r *PgxSequenceRepository) NextNumberTx(ctx context.Context, tx pgx.Tx, businessID string, kind domain.DocumentKind) (int64, error) {
	var n int64
	err := tx.QueryRow(ctx, nextNumberQuery, businessID, string(kind)).Scan(&n)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to advance sequence "+string(kind)+" for business "+businessID, err)
	}
	return n, nil
}
