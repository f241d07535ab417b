package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/importadora-api/internal/domain/entity"
	"github.com/jhoicas/importadora-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo adaptador de lectura del catálogo de productos.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// ListProducts devuelve el catálogo completo ordenado por nombre.
// COALESCE protege contra catálogos importados con costos o TRM nulos.
func (r *ProductRepo) ListProducts(ctx context.Context) ([]entity.Product, error) {
	const query = `
	SELECT
	    id,
	    sku,
	    name,
	    COALESCE(stock_quantity, 0)    AS stock_quantity,
	    COALESCE(cost_foreign, 0)      AS cost_foreign,
	    COALESCE(default_fx_rate, 0)   AS default_fx_rate,
	    COALESCE(list_price_local, 0)  AS list_price_local,
	    created_at
	FROM products
	ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("products.ListProducts: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID,
			&p.SKU,
			&p.Name,
			&p.StockQuantity,
			&p.CostForeign,
			&p.DefaultFxRate,
			&p.ListPriceLocal,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("products.ListProducts scan: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
