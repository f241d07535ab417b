package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/importadora-api/internal/domain/entity"
	"github.com/jhoicas/importadora-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo adaptador de lectura del libro de ventas.
type SaleRepo struct {
	pool *pgxpool.Pool
}

// NewSaleRepository construye el adaptador.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

// ListSalesForProduct líneas de venta cruzadas por NOMBRE de producto (llave
// heredada del sistema de pedidos) y filtradas por estado. La fecha de pago se
// devuelve como texto tal cual quedó importada: el filtrado por fecha es del
// motor, no de la consulta.
func (r *SaleRepo) ListSalesForProduct(
	ctx context.Context,
	productName string,
	statuses []string,
) ([]entity.SaleRecord, error) {
	const query = `
	SELECT
	    id,
	    product_name,
	    COALESCE(quantity, 0)         AS quantity,
	    COALESCE(unit_price_local, 0) AS unit_price_local,
	    COALESCE(payment_date_text, '') AS payment_date_text,
	    status
	FROM sales
	WHERE product_name = $1
	  AND status = ANY($2)
	ORDER BY id`

	rows, err := r.pool.Query(ctx, query, productName, statuses)
	if err != nil {
		return nil, fmt.Errorf("sales.ListSalesForProduct: %w", err)
	}
	defer rows.Close()

	var sales []entity.SaleRecord
	for rows.Next() {
		var s entity.SaleRecord
		if err := rows.Scan(
			&s.ID,
			&s.ProductName,
			&s.Quantity,
			&s.UnitPriceLocal,
			&s.PaymentDateText,
			&s.Status,
		); err != nil {
			return nil, fmt.Errorf("sales.ListSalesForProduct scan: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
