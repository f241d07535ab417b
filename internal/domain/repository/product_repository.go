package repository

import (
	"context"

	"github.com/jhoicas/importadora-api/internal/domain/entity"
)

// ProductRepository define el puerto de lectura del catálogo (DIP).
// El motor de rentabilidad nunca escribe: el stock y el catálogo los mantienen
// los flujos de recepción y venta.
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
}
