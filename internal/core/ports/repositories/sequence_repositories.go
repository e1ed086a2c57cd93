package repositories

import (
	"context"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// SequenceRepository hands out gapless per-business document numbers backed by
// an atomic counter row. Two concurrent callers never receive the same value.
type SequenceRepository interface {
	// NextNumber atomically increments and returns the counter for the
	// business and document kind.
	NextNumber(ctx context.Context, businessID string, kind domain.DocumentKind) (int64, error)

	// NextNumberTx does the same within an existing transaction, so the
	// number is rolled back together with the document that consumed it.
	NextNumberTx(ctx context.Context, tx pgx.Tx, businessID string, kind domain.DocumentKind) (int64, error)
}
