package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/importadora-api/internal/domain/entity"
	"github.com/jhoicas/importadora-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo adaptador de lectura del libro de compras (lotes al proveedor).
type PurchaseRepo struct {
	pool *pgxpool.Pool
}

// NewPurchaseRepository construye el adaptador.
func NewPurchaseRepository(pool *pgxpool.Pool) *PurchaseRepo {
	return &PurchaseRepo{pool: pool}
}

// ListDeliveredBatchesForProduct devuelve los lotes entregados con renglones
// del producto. La consulta aplana lote × renglón y el armado por lote se hace
// acá: el motor de costeo espera lotes completos con su TRM.
func (r *PurchaseRepo) ListDeliveredBatchesForProduct(
	ctx context.Context,
	productID string,
) ([]entity.PurchaseBatch, error) {
	const query = `
	SELECT
	    b.id,
	    b.date,
	    COALESCE(b.supplier, '') AS supplier,
	    COALESCE(b.fx_rate, 0)   AS fx_rate,
	    b.status,
	    i.product_id,
	    i.quantity,
	    COALESCE(i.unit_cost_foreign, 0) AS unit_cost_foreign
	FROM purchase_batches b
	JOIN purchase_batch_items i ON i.batch_id = b.id
	WHERE b.status = $1
	  AND i.product_id = $2
	ORDER BY b.date, b.id`

	rows, err := r.pool.Query(ctx, query, entity.BatchStatusDelivered, productID)
	if err != nil {
		return nil, fmt.Errorf("purchases.ListDeliveredBatchesForProduct: %w", err)
	}
	defer rows.Close()

	var batches []entity.PurchaseBatch
	byID := make(map[string]int)
	for rows.Next() {
		var b entity.PurchaseBatch
		var it entity.PurchaseBatchItem
		if err := rows.Scan(
			&b.ID,
			&b.Date,
			&b.Supplier,
			&b.FxRate,
			&b.Status,
			&it.ProductID,
			&it.Quantity,
			&it.UnitCostForeign,
		); err != nil {
			return nil, fmt.Errorf("purchases.ListDeliveredBatchesForProduct scan: %w", err)
		}
		idx, ok := byID[b.ID]
		if !ok {
			idx = len(batches)
			byID[b.ID] = idx
			batches = append(batches, b)
		}
		batches[idx].Items = append(batches[idx].Items, it)
	}
	return batches, rows.Err()
}

// InTransitQuantity unidades del producto en lotes in_transit (dato
// informativo del reporte, no participa en el costeo).
func (r *PurchaseRepo) InTransitQuantity(ctx context.Context, productID string) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(i.quantity), 0)
	FROM purchase_batches b
	JOIN purchase_batch_items i ON i.batch_id = b.id
	WHERE b.status = $1
	  AND i.product_id = $2`

	var qty decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, entity.BatchStatusInTransit, productID).Scan(&qty); err != nil {
		return decimal.Zero, fmt.Errorf("purchases.InTransitQuantity: %w", err)
	}
	return qty, nil
}
