package costing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/importadora-api/internal/domain/entity"
)

// CostBasis costo unitario y TRM promedio ponderados por cantidad comprada.
type CostBasis struct {
	AvgUnitCostForeign decimal.Decimal // USD por unidad
	AvgFxRate          decimal.Decimal // COP por USD
}

// AverageFromBatches calcula el promedio ponderado por cantidad sobre todos
// los renglones del producto en lotes entregados:
//
//	AvgUnitCostForeign = Σ(qty × costoUnitario) / Σ(qty)
//	AvgFxRate          = Σ(qty × trmDelLote)    / Σ(qty)
//
// Ambos promedios comparten el denominador Σ(qty) pero se acumulan por
// separado: un producto comprado a TRMs distintas obtiene una TRM mezclada
// correctamente, no solo un costo mezclado.
//
// Devuelve nil si no hay ningún renglón calificado (el llamador aplica la
// cadena de respaldo: catálogo del producto → TRM global por defecto).
func AverageFromBatches(productID string, batches []entity.PurchaseBatch) *CostBasis {
	var totalQty, costSum, fxSum decimal.Decimal

	for _, b := range batches {
		if b.Status != entity.BatchStatusDelivered {
			continue
		}
		for _, it := range b.Items {
			if it.ProductID != productID || !it.Quantity.IsPositive() {
				continue
			}
			totalQty = totalQty.Add(it.Quantity)
			costSum = costSum.Add(it.Quantity.Mul(it.UnitCostForeign))
			fxSum = fxSum.Add(it.Quantity.Mul(b.FxRate))
		}
	}

	if !totalQty.IsPositive() {
		return nil
	}
	return &CostBasis{
		AvgUnitCostForeign: costSum.Div(totalQty),
		AvgFxRate:          fxSum.Div(totalQty),
	}
}
