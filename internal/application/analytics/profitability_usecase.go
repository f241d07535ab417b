// Package analytics contiene el motor de rentabilidad y costeo: por cada
// producto del catálogo deriva el costo base histórico ponderado por lote y
// TRM, prorratea los gastos compartidos por unidad vendida, proyecta la
// velocidad de consumo y arma el reporte financiero de la ventana pedida.
package analytics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/importadora-api/internal/application/dto"
	"github.com/jhoicas/importadora-api/internal/domain/costing"
	"github.com/jhoicas/importadora-api/internal/domain/entity"
	"github.com/jhoicas/importadora-api/internal/domain/repository"
	"github.com/jhoicas/importadora-api/pkg/logger"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Tipos de gasto que el reporte consulta: los del pool (publicidad, logística)
// más other, que solo cuenta cuando viene etiquetado a un producto.
var reportExpenseTypes = []string{
	entity.ExpenseTypeAdvertising,
	entity.ExpenseTypeLogistics,
	entity.ExpenseTypeOther,
}

// Config parámetros de negocio del motor. Valores explícitos, inyectados desde
// la configuración de la app: nada de constantes globales mutables.
type Config struct {
	FlatHandlingFeePerUnit decimal.Decimal // tarifa fija de manejo por unidad vendida (COP)
	DeliveryLeadDays       int             // días de tránsito de un pedido al proveedor
	SoldStatuses           []string        // estados que cuentan como venta; vacío = DefaultSoldStatuses

	// Now reloj inyectable para pruebas; nil = time.Now.
	Now func() time.Time
}

// ProfitabilityUseCase orquesta el reporte financiero por producto.
//
// El cálculo es de dos fases porque el prorrateo necesita el total de unidades
// vendidas de TODOS los productos antes de poder repartir gasto alguno:
//
//	Fase 1 (paralela): ventana + ventas + costo base por producto.
//	Reducción:          Σ unidades vendidas, rango global de gastos.
//	Fase 2 (paralela): prorrateo, consumo y márgenes con los totales de fase 1.
//
// Ningún estado compartido se muta durante las fases; los libros se tratan
// como una foto inmutable del momento de la lectura, así que llamadas
// repetidas con los mismos datos son idempotentes.
type ProfitabilityUseCase struct {
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	saleRepo     repository.SaleRepository
	expenseRepo  repository.ExpenseRepository
	cfg          Config
	log          *logger.Logger
}

// NewProfitabilityUseCase construye el caso de uso.
func NewProfitabilityUseCase(
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	cfg Config,
	log *logger.Logger,
) *ProfitabilityUseCase {
	return &ProfitabilityUseCase{
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
		cfg:          cfg,
		log:          log,
	}
}

// productFigures resultado crudo de la fase 1 para un producto.
type productFigures struct {
	product   entity.Product
	window    costing.Window
	unitsSold decimal.Decimal
	revenue   decimal.Decimal
	costBasis *costing.CostBasis // nil = aplicar cadena de respaldo
	inTransit decimal.Decimal
}

// ComputeProductReports genera un reporte por cada producto del catálogo.
//
// fxRateDefault es la TRM global de último respaldo cuando el producto no
// tiene ni lotes entregados ni TRM de catálogo. from/to en nil = histórico.
//
// Una falla de un producto individual degrada solo su reporte (cero vendido,
// precio de catálogo, costo de respaldo) y deja una advertencia en el log;
// solo una falla dura de lectura del libro completo propaga error.
func (uc *ProfitabilityUseCase) ComputeProductReports(
	ctx context.Context,
	fxRateDefault decimal.Decimal,
	from, to *time.Time,
) ([]dto.ProductReportDTO, error) {
	products, err := uc.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("rentabilidad: listar catálogo: %w", err)
	}
	if len(products) == 0 {
		return []dto.ProductReportDTO{}, nil
	}

	runID := uuid.NewString()
	now := time.Now()
	if uc.cfg.Now != nil {
		now = uc.cfg.Now()
	}

	uc.log.Info().
		Str("run_id", runID).
		Int("products", len(products)).
		Msg("rentabilidad: cálculo iniciado")

	// ── Fase 1: cifras crudas por producto, en paralelo ───────────────────────
	figures := make([]productFigures, len(products))
	var wg sync.WaitGroup
	for i, p := range products {
		wg.Add(1)
		go func(i int, p entity.Product) {
			defer wg.Done()
			figures[i] = uc.collectFigures(ctx, p, from, to, now, runID)
		}(i, p)
	}
	wg.Wait()

	// ── Reducción: total de unidades y rango global de gastos ─────────────────
	var totalUnits decimal.Decimal
	expenseFrom, expenseTo := figures[0].window.Start, figures[0].window.End
	for _, f := range figures {
		totalUnits = totalUnits.Add(f.unitsSold)
		if f.window.Start.Before(expenseFrom) {
			expenseFrom = f.window.Start
		}
		if f.window.End.After(expenseTo) {
			expenseTo = f.window.End
		}
	}

	// Una sola lectura de gastos para el rango más amplio; el prorrateo filtra
	// por la ventana de cada producto en memoria.
	expenses, err := uc.expenseRepo.ListExpenses(ctx, reportExpenseTypes, expenseFrom, expenseTo)
	if err != nil {
		return nil, fmt.Errorf("rentabilidad: listar gastos: %w", err)
	}

	// ── Fase 2: prorrateo, consumo y márgenes, en paralelo ────────────────────
	reports := make([]dto.ProductReportDTO, len(figures))
	for i, f := range figures {
		wg.Add(1)
		go func(i int, f productFigures) {
			defer wg.Done()
			reports[i] = uc.buildReport(f, expenses, totalUnits, fxRateDefault)
		}(i, f)
	}
	wg.Wait()

	uc.log.Info().
		Str("run_id", runID).
		Str("total_units", totalUnits.String()).
		Msg("rentabilidad: cálculo terminado")

	return reports, nil
}

// collectFigures fase 1 de un producto: ventana, ventas calificadas dentro de
// la ventana, costo base promedio y unidades en tránsito. Cualquier falla de
// lectura degrada a valores seguros, nunca aborta el lote.
func (uc *ProfitabilityUseCase) collectFigures(
	ctx context.Context,
	p entity.Product,
	from, to *time.Time,
	now time.Time,
	runID string,
) productFigures {
	f := productFigures{product: p}

	statuses := uc.cfg.SoldStatuses
	if len(statuses) == 0 {
		statuses = entity.DefaultSoldStatuses
	}

	// El cruce es por NOMBRE de producto: el sistema de pedidos nunca guardó
	// el ID. Contrato heredado y documentado; no "corregir" a cruce por ID.
	sales, err := uc.saleRepo.ListSalesForProduct(ctx, p.Name, statuses)
	if err != nil {
		uc.log.Warn().
			Str("run_id", runID).
			Str("product_id", p.ID).
			Err(err).
			Msg("rentabilidad: ventas ilegibles, producto degradado a valores seguros")
		sales = nil
	}

	f.window = costing.ResolveWindow(from, to, p.CreatedAt, costing.FirstQualifyingSaleDate(sales), now)

	// Dos pasos a propósito: listar candidatas y filtrar acá por fecha
	// parseada. Fechas ilegibles = sin información, la venta no cuenta.
	for _, s := range sales {
		t, ok := costing.ParsePaymentDate(s.PaymentDateText)
		if !ok || !f.window.Contains(t) {
			continue
		}
		f.unitsSold = f.unitsSold.Add(s.Quantity)
		f.revenue = f.revenue.Add(s.Quantity.Mul(s.UnitPriceLocal))
	}

	batches, err := uc.purchaseRepo.ListDeliveredBatchesForProduct(ctx, p.ID)
	if err != nil {
		uc.log.Warn().
			Str("run_id", runID).
			Str("product_id", p.ID).
			Err(err).
			Msg("rentabilidad: lotes ilegibles, se usa costo de catálogo")
	} else {
		f.costBasis = costing.AverageFromBatches(p.ID, batches)
	}

	if qty, err := uc.purchaseRepo.InTransitQuantity(ctx, p.ID); err != nil {
		uc.log.Warn().
			Str("run_id", runID).
			Str("product_id", p.ID).
			Err(err).
			Msg("rentabilidad: unidades en tránsito ilegibles")
	} else {
		f.inTransit = qty
	}

	return f
}

// buildReport fase 2 de un producto: combina las cifras crudas con los totales
// cruzados y arma el DTO con todas las cifras intermedias.
func (uc *ProfitabilityUseCase) buildReport(
	f productFigures,
	expenses []entity.ExpenseRecord,
	totalUnitsAllProducts decimal.Decimal,
	fxRateDefault decimal.Decimal,
) dto.ProductReportDTO {
	p := f.product

	costForeign, fxRate := resolveCostBasis(p, f.costBasis, fxRateDefault)
	costBasisLocal := costForeign.Mul(fxRate)

	avgSellingPrice := p.ListPriceLocal
	if f.unitsSold.IsPositive() {
		avgSellingPrice = f.revenue.Div(f.unitsSold)
	}

	allocated := costing.AllocateSharedPerUnit(
		expenses, f.window, totalUnitsAllProducts, uc.cfg.FlatHandlingFeePerUnit)

	directPerUnit := decimal.Zero
	if direct := costing.DirectExpensesFor(expenses, p.ID, f.window); direct.IsPositive() {
		units := f.unitsSold
		if units.LessThan(one) {
			units = one
		}
		directPerUnit = direct.Div(units)
	}

	cons := costing.AnalyzeConsumption(
		f.unitsSold, f.window.Days, p.StockQuantity, uc.cfg.DeliveryLeadDays)

	totalCostPerUnit := costBasisLocal.Add(allocated).Add(directPerUnit)
	netProfitPerUnit := avgSellingPrice.Sub(totalCostPerUnit)

	marginPct := decimal.Zero
	if avgSellingPrice.IsPositive() {
		marginPct = netProfitPerUnit.Div(avgSellingPrice).Mul(hundred)
	}

	return dto.ProductReportDTO{
		ProductID:   p.ID,
		SKU:         p.SKU,
		ProductName: p.Name,

		WindowStart: f.window.Start.Format("2006-01-02"),
		WindowEnd:   f.window.End.Format("2006-01-02"),
		WindowDays:  f.window.Days,

		AvgUnitCostForeign: costForeign.Round(4),
		EffectiveFxRate:    fxRate.Round(4),
		CostBasisLocal:     costBasisLocal.Round(2),

		UnitsSold:       f.unitsSold,
		Revenue:         f.revenue.Round(2),
		AvgSellingPrice: avgSellingPrice.Round(2),

		AllocatedExpensePerUnit: allocated.Round(2),
		DirectExpensePerUnit:    directPerUnit.Round(2),
		TotalCostPerUnit:        totalCostPerUnit.Round(2),
		NetProfitPerUnit:        netProfitPerUnit.Round(2),
		NetProfitTotal:          netProfitPerUnit.Mul(f.unitsSold).Round(2),
		MarginPct:               marginPct.Round(2),

		DailyConsumptionRate: cons.DailyRate.Round(4),
		DaysOfStockRemaining: cons.DaysOfStock.Round(1),
		ReorderSignal:        cons.ReorderSignal,
		CurrentStock:         p.StockQuantity,
		UnitsInTransit:       f.inTransit,
	}
}

// resolveCostBasis cadena de respaldo del costo base:
// promedio de lotes entregados → costo/TRM de catálogo → TRM global por defecto.
func resolveCostBasis(
	p entity.Product,
	cb *costing.CostBasis,
	fxRateDefault decimal.Decimal,
) (costForeign, fxRate decimal.Decimal) {
	if cb != nil {
		return cb.AvgUnitCostForeign, cb.AvgFxRate
	}
	costForeign = p.CostForeign
	fxRate = p.DefaultFxRate
	if !fxRate.IsPositive() {
		fxRate = fxRateDefault
	}
	return costForeign, fxRate
}
