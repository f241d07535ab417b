package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de gasto indirecto.
const (
	ExpenseTypeAdvertising = "advertising"
	ExpenseTypeLogistics   = "logistics"
	ExpenseTypePayroll     = "payroll"
	ExpenseTypeOther       = "other"
	ExpenseTypePurchase    = "purchase" // generado por el flujo de compras; nunca se prorratea
)

// ExpenseRecord representa un gasto indirecto del negocio.
// ProductID vacío = gasto compartido (entra al pool de prorrateo si el tipo
// aplica); con valor = gasto etiquetado directamente a un producto, que se
// suma aparte y nunca entra al pool.
type ExpenseRecord struct {
	ID          string
	Date        time.Time
	Type        string
	AmountLocal decimal.Decimal // COP
	ProductID   string
}
