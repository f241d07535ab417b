package entity

import "github.com/shopspring/decimal"

// Estados de una línea de venta (orden del cliente).
const (
	SaleStatusUnpaid     = "unpaid"
	SaleStatusProcessing = "processing"
	SaleStatusShipped    = "shipped"
	SaleStatusDelivered  = "delivered"
	SaleStatusCancelled  = "cancelled"
	SaleStatusOverdue    = "overdue"
	SaleStatusRefunded   = "refunded"
)

// DefaultSoldStatuses estados que cuentan como venta efectiva para costeo y
// velocidad de consumo. Decisión de negocio, no regla universal: delivered se
// incluye solo si la configuración lo pide.
var DefaultSoldStatuses = []string{SaleStatusProcessing, SaleStatusShipped}

// SaleRecord representa una línea de una orden de venta.
//
// ProductName es la llave de cruce con el catálogo: el sistema de pedidos
// original nunca guardó el ID del producto, solo su nombre. El cruce por
// nombre se conserva tal cual (contrato documentado; ver DESIGN.md).
//
// PaymentDateText viene del importador de órdenes en formato localizado y
// ambiguo; se parsea con costing.ParsePaymentDate y las fechas ilegibles se
// excluyen de cualquier agregación.
type SaleRecord struct {
	ID              string
	ProductName     string
	Quantity        decimal.Decimal
	UnitPriceLocal  decimal.Decimal // COP por unidad
	PaymentDateText string
	Status          string
}
