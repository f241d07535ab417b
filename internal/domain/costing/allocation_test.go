package costing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/importadora-api/internal/domain/costing"
	"github.com/jhoicas/importadora-api/internal/domain/entity"
)

func juneWindow() costing.Window {
	return costing.Window{
		Start: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC),
		Days:  30,
	}
}

func expenseOn(day int, typ string, amount int64, productID string) entity.ExpenseRecord {
	return entity.ExpenseRecord{
		Date:        time.Date(2026, 6, day, 10, 0, 0, 0, time.UTC),
		Type:        typ,
		AmountLocal: decimal.NewFromInt(amount),
		ProductID:   productID,
	}
}

// TestAllocateSharedPerUnit_PoolAndSpread publicidad y logística de la ventana
// se esparcen parejo por unidad vendida, más la tarifa fija de manejo.
func TestAllocateSharedPerUnit_PoolAndSpread(t *testing.T) {
	expenses := []entity.ExpenseRecord{
		expenseOn(5, entity.ExpenseTypeAdvertising, 300_000, ""),
		expenseOn(12, entity.ExpenseTypeLogistics, 150_000, ""),
		expenseOn(20, entity.ExpenseTypeAdvertising, 100_000, ""),
	}

	perUnit := costing.AllocateSharedPerUnit(
		expenses, juneWindow(),
		decimal.NewFromInt(100),       // unidades vendidas de todos los productos
		decimal.NewFromInt(2_000),     // tarifa fija de manejo (COP)
	)

	// (300000+100000)/100 + 150000/100 + 2000 = 4000 + 1500 + 2000
	assert.True(t, perUnit.Equal(decimal.NewFromInt(7_500)),
		"prorrateo esperado 7500 COP/und, obtenido %s", perUnit)
}

// TestAllocateSharedPerUnit_ExcluyeTiposYEtiquetados payroll/other no entran
// al pool; los gastos etiquetados a un producto tampoco, aunque sean de
// publicidad; y los gastos fuera de la ventana se ignoran.
func TestAllocateSharedPerUnit_ExcluyeTiposYEtiquetados(t *testing.T) {
	expenses := []entity.ExpenseRecord{
		expenseOn(10, entity.ExpenseTypePayroll, 5_000_000, ""),
		expenseOn(10, entity.ExpenseTypeOther, 900_000, ""),
		expenseOn(10, entity.ExpenseTypeAdvertising, 400_000, "prod-007"), // etiquetado
		expenseOn(10, entity.ExpenseTypeLogistics, 200_000, ""),
		{ // fuera de la ventana
			Date: time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC),
			Type: entity.ExpenseTypeAdvertising, AmountLocal: decimal.NewFromInt(999_999),
		},
	}

	perUnit := costing.AllocateSharedPerUnit(expenses, juneWindow(), decimal.NewFromInt(50), decimal.Zero)

	assert.True(t, perUnit.Equal(decimal.NewFromInt(4_000)),
		"solo la logística compartida de junio (200000/50) debe prorratearse, obtenido %s", perUnit)
}

// TestAllocateSharedPerUnit_SinVentas el denominador se pisa a 1: una ventana
// sin ventas asigna todo el pool a una unidad hipotética en vez de dividir
// por cero.
func TestAllocateSharedPerUnit_SinVentas(t *testing.T) {
	expenses := []entity.ExpenseRecord{
		expenseOn(3, entity.ExpenseTypeAdvertising, 80_000, ""),
	}

	perUnit := costing.AllocateSharedPerUnit(expenses, juneWindow(), decimal.Zero, decimal.Zero)

	assert.True(t, perUnit.Equal(decimal.NewFromInt(80_000)))
}

// TestAllocation_Conservacion propiedad de conservación: sumar el prorrateo
// por unidad × unidades de cada producto reconstruye (dentro de tolerancia de
// redondeo) el total de gasto compartido de la ventana, excluida la tarifa fija.
func TestAllocation_Conservacion(t *testing.T) {
	expenses := []entity.ExpenseRecord{
		expenseOn(1, entity.ExpenseTypeAdvertising, 537_123, ""),
		expenseOn(9, entity.ExpenseTypeLogistics, 244_877, ""),
		expenseOn(17, entity.ExpenseTypeAdvertising, 99_000, ""),
	}
	sharedTotal := decimal.NewFromInt(537_123 + 244_877 + 99_000)

	// Unidades vendidas por producto en la misma ventana
	unitsByProduct := []decimal.Decimal{
		decimal.NewFromInt(37),
		decimal.NewFromInt(11),
		decimal.NewFromInt(95),
	}
	var totalUnits decimal.Decimal
	for _, u := range unitsByProduct {
		totalUnits = totalUnits.Add(u)
	}

	var reconstructed decimal.Decimal
	for _, u := range unitsByProduct {
		perUnit := costing.AllocateSharedPerUnit(expenses, juneWindow(), totalUnits, decimal.Zero)
		reconstructed = reconstructed.Add(perUnit.Mul(u))
	}

	diff := reconstructed.Sub(sharedTotal).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.01)),
		"Σ(prorrateo×unidades) = %s debe reconstruir el gasto compartido %s", reconstructed, sharedTotal)
}

// TestDirectExpensesFor_SoloDelProductoYVentana
func TestDirectExpensesFor_SoloDelProductoYVentana(t *testing.T) {
	expenses := []entity.ExpenseRecord{
		expenseOn(4, entity.ExpenseTypeAdvertising, 50_000, "prod-007"),
		expenseOn(8, entity.ExpenseTypeOther, 30_000, "prod-007"),
		expenseOn(8, entity.ExpenseTypeOther, 70_000, "prod-otro"),
		expenseOn(8, entity.ExpenseTypeLogistics, 10_000, ""), // compartido, no cuenta
	}

	direct := costing.DirectExpensesFor(expenses, "prod-007", juneWindow())
	assert.True(t, direct.Equal(decimal.NewFromInt(80_000)))

	assert.True(t, costing.DirectExpensesFor(expenses, "", juneWindow()).IsZero(),
		"un productID vacío nunca debe arrastrar los gastos compartidos")
}
