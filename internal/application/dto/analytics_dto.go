package dto

import "github.com/shopspring/decimal"

// ReportRequest período solicitado para el reporte de rentabilidad.
// Ambas fechas en formato 2006-01-02; vacías = histórico ("todo el tiempo").
type ReportRequest struct {
	From string `query:"from"`
	To   string `query:"to"`
}

// ProductReportDTO reporte financiero de un producto en la ventana resuelta.
//
// Se conservan todas las cifras intermedias, no solo el margen final: los
// consumidores (edición masiva de precios, exportes) dependen de ver el costo
// base y el prorrateo por separado.
type ProductReportDTO struct {
	ProductID   string `json:"product_id"`
	SKU         string `json:"sku"`
	ProductName string `json:"product_name"`

	WindowStart string `json:"window_start"` // 2006-01-02
	WindowEnd   string `json:"window_end"`
	WindowDays  int    `json:"window_days"`

	// Costo base
	AvgUnitCostForeign decimal.Decimal `json:"avg_unit_cost_foreign"` // USD
	EffectiveFxRate    decimal.Decimal `json:"effective_fx_rate"`     // COP por USD
	CostBasisLocal     decimal.Decimal `json:"cost_basis_local"`      // COP

	// Ventas de la ventana
	UnitsSold       decimal.Decimal `json:"units_sold"`
	Revenue         decimal.Decimal `json:"revenue"`
	AvgSellingPrice decimal.Decimal `json:"avg_selling_price"`

	// Gastos y margen
	AllocatedExpensePerUnit decimal.Decimal `json:"allocated_expense_per_unit"` // pool + tarifa fija
	DirectExpensePerUnit    decimal.Decimal `json:"direct_expense_per_unit"`    // etiquetados al producto
	TotalCostPerUnit        decimal.Decimal `json:"total_cost_per_unit"`
	NetProfitPerUnit        decimal.Decimal `json:"net_profit_per_unit"`
	NetProfitTotal          decimal.Decimal `json:"net_profit_total"`
	MarginPct               decimal.Decimal `json:"margin_pct"`

	// Consumo y reposición
	DailyConsumptionRate decimal.Decimal `json:"daily_consumption_rate"`
	DaysOfStockRemaining decimal.Decimal `json:"days_of_stock_remaining"`
	ReorderSignal        bool            `json:"reorder_signal"`
	CurrentStock         decimal.Decimal `json:"current_stock"`
	UnitsInTransit       decimal.Decimal `json:"units_in_transit"`
}
