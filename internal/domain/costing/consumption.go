package costing

import "github.com/shopspring/decimal"

// StockRunwaySentinel "pista infinita" para productos sin velocidad reciente.
// Un producto que no vende no debe disparar reorden por un artefacto de
// división; un número grande finito mantiene las comparaciones bien definidas.
const StockRunwaySentinel = 999

// Consumption velocidad de venta y proyección de agotamiento de stock.
type Consumption struct {
	DailyRate     decimal.Decimal // unidades por día en la ventana
	DaysOfStock   decimal.Decimal // días hasta agotar el stock actual
	ReorderSignal bool            // true si el stock se agota antes de que llegue un nuevo pedido
}

// AnalyzeConsumption proyecta la cobertura del stock actual:
//
//	DailyRate     = unitsSold / windowDays
//	DaysOfStock   = stock / DailyRate   (centinela 999 si DailyRate = 0)
//	ReorderSignal = DaysOfStock <= leadDays
func AnalyzeConsumption(unitsSold decimal.Decimal, windowDays int, stock decimal.Decimal, leadDays int) Consumption {
	if windowDays < 1 {
		windowDays = 1
	}
	rate := unitsSold.Div(decimal.NewFromInt(int64(windowDays)))

	days := decimal.NewFromInt(StockRunwaySentinel)
	if rate.IsPositive() {
		days = stock.Div(rate)
	}

	return Consumption{
		DailyRate:     rate,
		DaysOfStock:   days,
		ReorderSignal: rate.IsPositive() && days.LessThanOrEqual(decimal.NewFromInt(int64(leadDays))),
	}
}
