package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto importado del catálogo.
// CostForeign y DefaultFxRate son los valores de catálogo: se usan como
// respaldo cuando el producto aún no tiene lotes de compra entregados.
// StockQuantity lo mantienen los flujos de recepción/venta; aquí es solo lectura.
type Product struct {
	ID             string
	SKU            string // código único del catálogo
	Name           string
	StockQuantity  decimal.Decimal
	CostForeign    decimal.Decimal // costo de catálogo en moneda extranjera (USD)
	DefaultFxRate  decimal.Decimal // TRM de referencia del producto (COP por USD)
	ListPriceLocal decimal.Decimal // precio de venta de catálogo (COP)
	CreatedAt      time.Time
}
