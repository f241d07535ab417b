package costing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/importadora-api/internal/domain/costing"
	"github.com/jhoicas/importadora-api/internal/domain/entity"
)

const testProductID = "prod-001"

// TestAverageFromBatches_PromedioPonderado valida el vector de referencia del
// promedio ponderado: dos lotes con cantidades, costos y TRM distintos.
//
//	Lote A: 10 und @ 100 USD, TRM 3.0
//	Lote B:  5 und @ 130 USD, TRM 3.5
//	Costo  = (10×100 + 5×130) / 15 = 110
//	TRM    = (10×3.0 + 5×3.5) / 15 ≈ 3.1667
func TestAverageFromBatches_PromedioPonderado(t *testing.T) {
	batches := []entity.PurchaseBatch{
		{
			ID: "lote-a", Status: entity.BatchStatusDelivered,
			Date: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
			FxRate: decimal.NewFromFloat(3.0),
			Items: []entity.PurchaseBatchItem{
				{ProductID: testProductID, Quantity: decimal.NewFromInt(10), UnitCostForeign: decimal.NewFromInt(100)},
			},
		},
		{
			ID: "lote-b", Status: entity.BatchStatusDelivered,
			Date: time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
			FxRate: decimal.NewFromFloat(3.5),
			Items: []entity.PurchaseBatchItem{
				{ProductID: testProductID, Quantity: decimal.NewFromInt(5), UnitCostForeign: decimal.NewFromInt(130)},
			},
		},
	}

	cb := costing.AverageFromBatches(testProductID, batches)
	require.NotNil(t, cb, "con lotes entregados el promedio debe existir")

	assert.True(t, cb.AvgUnitCostForeign.Equal(decimal.NewFromInt(110)),
		"costo ponderado esperado 110, obtenido %s", cb.AvgUnitCostForeign)

	wantFx := decimal.NewFromFloat(3.1667)
	assert.True(t, cb.AvgFxRate.Sub(wantFx).Abs().LessThan(decimal.NewFromFloat(0.0001)),
		"TRM ponderada esperada ≈3.1667, obtenida %s", cb.AvgFxRate)
}

// TestAverageFromBatches_SoloLotesEntregados verifica que pending e in_transit
// no participan en el promedio aunque contengan renglones del producto.
func TestAverageFromBatches_SoloLotesEntregados(t *testing.T) {
	batches := []entity.PurchaseBatch{
		{
			ID: "lote-pendiente", Status: entity.BatchStatusPending,
			FxRate: decimal.NewFromFloat(4.2),
			Items: []entity.PurchaseBatchItem{
				{ProductID: testProductID, Quantity: decimal.NewFromInt(50), UnitCostForeign: decimal.NewFromInt(999)},
			},
		},
		{
			ID: "lote-transito", Status: entity.BatchStatusInTransit,
			FxRate: decimal.NewFromFloat(4.1),
			Items: []entity.PurchaseBatchItem{
				{ProductID: testProductID, Quantity: decimal.NewFromInt(20), UnitCostForeign: decimal.NewFromInt(888)},
			},
		},
		{
			ID: "lote-entregado", Status: entity.BatchStatusDelivered,
			FxRate: decimal.NewFromFloat(4.0),
			Items: []entity.PurchaseBatchItem{
				{ProductID: testProductID, Quantity: decimal.NewFromInt(8), UnitCostForeign: decimal.NewFromInt(25)},
			},
		},
	}

	cb := costing.AverageFromBatches(testProductID, batches)
	require.NotNil(t, cb)
	assert.True(t, cb.AvgUnitCostForeign.Equal(decimal.NewFromInt(25)),
		"solo el lote entregado debe pesar en el promedio")
	assert.True(t, cb.AvgFxRate.Equal(decimal.NewFromFloat(4.0)))
}

// TestAverageFromBatches_IgnoraOtrosProductos los renglones de otros productos
// dentro del mismo lote no contaminan el promedio.
func TestAverageFromBatches_IgnoraOtrosProductos(t *testing.T) {
	batches := []entity.PurchaseBatch{
		{
			ID: "lote-mixto", Status: entity.BatchStatusDelivered,
			FxRate: decimal.NewFromFloat(4.0),
			Items: []entity.PurchaseBatchItem{
				{ProductID: testProductID, Quantity: decimal.NewFromInt(4), UnitCostForeign: decimal.NewFromInt(10)},
				{ProductID: "prod-otro", Quantity: decimal.NewFromInt(100), UnitCostForeign: decimal.NewFromInt(700)},
			},
		},
	}

	cb := costing.AverageFromBatches(testProductID, batches)
	require.NotNil(t, cb)
	assert.True(t, cb.AvgUnitCostForeign.Equal(decimal.NewFromInt(10)))
}

// TestAverageFromBatches_SinLotes sin lotes calificados el promedio es
// indefinido: nil dispara la cadena de respaldo en el agregador.
func TestAverageFromBatches_SinLotes(t *testing.T) {
	assert.Nil(t, costing.AverageFromBatches(testProductID, nil))
	assert.Nil(t, costing.AverageFromBatches(testProductID, []entity.PurchaseBatch{
		{ID: "lote-x", Status: entity.BatchStatusPending},
	}))
}
