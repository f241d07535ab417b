package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un lote de compra al proveedor.
const (
	BatchStatusPending   = "pending"
	BatchStatusInTransit = "in_transit"
	BatchStatusDelivered = "delivered"
)

// PurchaseBatchItem renglón de un lote: cantidad y costo unitario en moneda extranjera.
type PurchaseBatchItem struct {
	ProductID       string
	Quantity        decimal.Decimal
	UnitCostForeign decimal.Decimal // USD por unidad
}

// PurchaseBatch representa un pedido al proveedor del exterior.
// FxRate es la TRM pactada al momento de la compra; una vez el lote pasa a
// delivered el lote queda inmutable para efectos de costeo.
type PurchaseBatch struct {
	ID       string
	Date     time.Time
	Supplier string
	FxRate   decimal.Decimal // COP por USD al momento de la compra
	Status   string
	Items    []PurchaseBatchItem
}
