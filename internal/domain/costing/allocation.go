package costing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/importadora-api/internal/domain/entity"
)

var one = decimal.NewFromInt(1)

// PoolExpenseTypes tipos de gasto compartido que entran al pool por unidad.
// payroll y other quedan fuera del prorrateo por unidad vendida.
var PoolExpenseTypes = []string{entity.ExpenseTypeAdvertising, entity.ExpenseTypeLogistics}

// AllocateSharedPerUnit reparte publicidad y logística de la ventana entre el
// total de unidades vendidas de todos los productos (pool-and-spread) y suma
// la tarifa fija de manejo por unidad:
//
//	perUnit = flatHandlingFee + totalAdvertising/unidades + totalLogistics/unidades
//
// La política es deliberada: el gasto de publicidad NO se atribuye al producto
// que nominalmente lo motivó; se esparce parejo por unidad vendida. Los gastos
// etiquetados a un producto (ProductID no vacío) son una categoría aparte y
// nunca entran al pool (ver DirectExpensesFor).
//
// totalUnitsAllProducts se pisa a mínimo 1 para que una ventana sin ventas no
// divida por cero.
func AllocateSharedPerUnit(
	expenses []entity.ExpenseRecord,
	w Window,
	totalUnitsAllProducts decimal.Decimal,
	flatHandlingFee decimal.Decimal,
) decimal.Decimal {
	var totalAdvertising, totalLogistics decimal.Decimal

	for _, e := range expenses {
		if e.ProductID != "" || !w.Contains(e.Date) {
			continue
		}
		switch e.Type {
		case entity.ExpenseTypeAdvertising:
			totalAdvertising = totalAdvertising.Add(e.AmountLocal)
		case entity.ExpenseTypeLogistics:
			totalLogistics = totalLogistics.Add(e.AmountLocal)
		}
	}

	units := totalUnitsAllProducts
	if units.LessThan(one) {
		units = one
	}

	return flatHandlingFee.
		Add(totalAdvertising.Div(units)).
		Add(totalLogistics.Div(units))
}

// DirectExpensesFor suma los gastos etiquetados directamente al producto
// dentro de la ventana. Se agregan encima del prorrateo, nunca dentro de él.
func DirectExpensesFor(expenses []entity.ExpenseRecord, productID string, w Window) decimal.Decimal {
	var total decimal.Decimal
	if productID == "" {
		return total
	}
	for _, e := range expenses {
		if e.ProductID != productID || !w.Contains(e.Date) {
			continue
		}
		total = total.Add(e.AmountLocal)
	}
	return total
}
