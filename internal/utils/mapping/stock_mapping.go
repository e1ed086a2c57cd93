package mapping

import (
	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/bizledger/biz_ledger_app/internal/models"
)

// ToModelStockMovement converts a domain StockMovement to a model StockMovement
func ToModelStockMovement(d domain.StockMovement) models.StockMovement {
	return models.StockMovement{
		MovementID:   d.MovementID,
		BusinessID:   d.BusinessID,
		ProductID:    d.ProductID,
		MovementType: string(d.MovementType),
		Quantity:     d.Quantity,
		UnitCost:     d.UnitCost,
		TotalValue:   d.TotalValue,
		MovementDate: d.MovementDate,
		Reference:    d.Reference,
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStockMovement converts a model StockMovement to a domain StockMovement
func ToDomainStockMovement(m models.StockMovement) domain.StockMovement {
	return domain.StockMovement{
		MovementID:   m.MovementID,
		BusinessID:   m.BusinessID,
		ProductID:    m.ProductID,
		MovementType: domain.StockMovementType(m.MovementType),
		Quantity:     m.Quantity,
		UnitCost:     m.UnitCost,
		TotalValue:   m.TotalValue,
		MovementDate: m.MovementDate,
		Reference:    m.Reference,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStockMovementSlice converts model stock movements to domain form
func ToDomainStockMovementSlice(ms []models.StockMovement) []domain.StockMovement {
	ds := make([]domain.StockMovement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockMovement(m)
	}
	return ds
}
