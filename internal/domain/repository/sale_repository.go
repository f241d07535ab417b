package repository

import (
	"context"

	"github.com/jhoicas/importadora-api/internal/domain/entity"
)

// SaleRepository define el puerto de lectura del libro de ventas (DIP).
type SaleRepository interface {
	// ListSalesForProduct devuelve las líneas de venta cruzadas por nombre de
	// producto y filtradas por estado. El filtrado por fecha NO se delega al
	// almacenamiento: la fecha de pago es texto ambiguo y se parsea y filtra
	// en memoria (contrato de dos pasos: listar candidatas, filtrar acá).
	ListSalesForProduct(ctx context.Context, productName string, statuses []string) ([]entity.SaleRecord, error)
}
