// Package pdf genera el exporte A4 del reporte de rentabilidad por producto:
// una tabla con costo base, prorrateo, margen y señal de reorden por SKU, con
// montos formateados es-CO.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/importadora-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// esCO impresora para montos con separadores locales (45.100,00).
var esCO = message.NewPrinter(language.MustParse("es-CO"))

// ProfitabilityPDFGenerator exporta el reporte de rentabilidad usando Maroto v2.
type ProfitabilityPDFGenerator struct{}

// NewProfitabilityPDFGenerator construye el generador.
func NewProfitabilityPDFGenerator() *ProfitabilityPDFGenerator {
	return &ProfitabilityPDFGenerator{}
}

// Generate arma el PDF y devuelve sus bytes. periodLabel es la etiqueta humana
// del período (ej: "2026-06-01 a 2026-06-30" o "histórico").
func (g *ProfitabilityPDFGenerator) Generate(
	reports []dto.ProductReportDTO,
	periodLabel string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Reporte de rentabilidad por producto", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(periodLabel))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range reports {
		m.AddRows(tableRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(reports))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(periodLabel string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Rentabilidad por producto", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Costeo ponderado por lote y TRM, gastos prorrateados por unidad vendida", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Período: "+periodLabel, props.Text{
				Size: 9, Top: 3, Align: align.Right,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		header(2, "SKU / Producto"),
		header(1, "Und."),
		header(2, "Costo base COP"),
		header(2, "Gasto/und COP"),
		header(2, "Precio prom."),
		header(1, "Margen %"),
		header(1, "Días stock"),
		header(1, "Reorden"),
	)
}

func tableRow(r dto.ProductReportDTO) core.Row {
	cell := func(size int, value string, color *props.Color) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Top: 1, Color: color}))
	}

	marginColor := colorGray
	if r.NetProfitPerUnit.IsNegative() {
		marginColor = colorRed
	}

	reorder := "—"
	if r.ReorderSignal {
		reorder = "SÍ"
	}

	return row.New(6).Add(
		cell(2, r.SKU+" "+r.ProductName, nil),
		cell(1, r.UnitsSold.String(), nil),
		cell(2, money(r.CostBasisLocal), nil),
		cell(2, money(r.AllocatedExpensePerUnit.Add(r.DirectExpensePerUnit)), nil),
		cell(2, money(r.AvgSellingPrice), nil),
		cell(1, r.MarginPct.StringFixed(1), marginColor),
		cell(1, r.DaysOfStockRemaining.StringFixed(0), nil),
		cell(1, reorder, marginColor),
	)
}

func totalsRow(reports []dto.ProductReportDTO) core.Row {
	var revenue, profit decimal.Decimal
	for _, r := range reports {
		revenue = revenue.Add(r.Revenue)
		profit = profit.Add(r.NetProfitTotal)
	}

	return row.New(10).Add(
		col.New(6).Add(text.New(
			fmt.Sprintf("%d productos", len(reports)),
			props.Text{Size: 9, Top: 2, Color: colorGray},
		)),
		col.New(3).Add(text.New(
			"Ingresos: "+money(revenue),
			props.Text{Size: 9, Top: 2, Style: fontstyle.Bold, Align: align.Right},
		)),
		col.New(3).Add(text.New(
			"Utilidad: "+money(profit),
			props.Text{Size: 9, Top: 2, Style: fontstyle.Bold, Align: align.Right},
		)),
	)
}

// money formatea un monto COP con separadores es-CO.
func money(d decimal.Decimal) string {
	return esCO.Sprintf("$ %.2f", d.InexactFloat64())
}
