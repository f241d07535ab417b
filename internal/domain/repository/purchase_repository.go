package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/importadora-api/internal/domain/entity"
)

// PurchaseRepository define el puerto de lectura del libro de compras (DIP).
type PurchaseRepository interface {
	// ListDeliveredBatchesForProduct devuelve los lotes en estado delivered
	// que contienen renglones del producto. Solo estos lotes participan en el
	// promedio ponderado de costo.
	ListDeliveredBatchesForProduct(ctx context.Context, productID string) ([]entity.PurchaseBatch, error)

	// InTransitQuantity devuelve las unidades del producto en lotes in_transit.
	// Es un dato informativo del reporte; no participa en el costeo.
	InTransitQuantity(ctx context.Context, productID string) (decimal.Decimal, error)
}
