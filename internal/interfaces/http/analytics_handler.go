package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	appanalytics "github.com/jhoicas/importadora-api/internal/application/analytics"
	"github.com/jhoicas/importadora-api/internal/application/dto"
	"github.com/jhoicas/importadora-api/internal/infrastructure/pdf"
)

// AnalyticsHandler maneja los endpoints del reporte de rentabilidad.
type AnalyticsHandler struct {
	uc        *appanalytics.ProfitabilityUseCase
	pdfGen    *pdf.ProfitabilityPDFGenerator
	defaultFx decimal.Decimal // TRM global de respaldo, desde configuración
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(
	uc *appanalytics.ProfitabilityUseCase,
	pdfGen *pdf.ProfitabilityPDFGenerator,
	defaultFx decimal.Decimal,
) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, pdfGen: pdfGen, defaultFx: defaultFx}
}

// GetProductReports devuelve el reporte financiero por producto.
// GET /api/analytics/rentabilidad?from=2026-06-01&to=2026-06-30
//
// Sin from/to el reporte es histórico: cada producto ancla su ventana en su
// primera venta calificada. Respuesta: []ProductReportDTO con todas las cifras
// intermedias (costo base, prorrateo, margen, consumo, reorden).
func (h *AnalyticsHandler) GetProductReports(c *fiber.Ctx) error {
	from, to, err := parseReportPeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "BAD_PERIOD", Message: err.Error(),
		})
	}

	reports, err := h.uc.ComputeProductReports(c.Context(), h.defaultFx, from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.JSON(reports)
}

// GetProductReportsPDF exporta el mismo reporte como PDF A4.
// GET /api/analytics/rentabilidad/pdf?from=&to=
func (h *AnalyticsHandler) GetProductReportsPDF(c *fiber.Ctx) error {
	from, to, err := parseReportPeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "BAD_PERIOD", Message: err.Error(),
		})
	}

	reports, err := h.uc.ComputeProductReports(c.Context(), h.defaultFx, from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	label := "histórico"
	if from != nil && to != nil {
		label = from.Format("2006-01-02") + " a " + to.Format("2006-01-02")
	}

	bytes, err := h.pdfGen.Generate(reports, label)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "PDF_GENERATION", Message: err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="rentabilidad.pdf"`)
	return c.Send(bytes)
}

// parseReportPeriod lee from/to en formato 2006-01-02. Ambos vacíos =
// histórico. to se extiende al final del día para que la ventana incluya las
// ventas de la fecha de cierre.
func parseReportPeriod(c *fiber.Ctx) (from, to *time.Time, err error) {
	var req dto.ReportRequest
	if err := c.QueryParser(&req); err != nil {
		return nil, nil, fmt.Errorf("parámetros de período ilegibles: %w", err)
	}

	if req.From != "" {
		t, err := time.Parse("2006-01-02", req.From)
		if err != nil {
			return nil, nil, fmt.Errorf("from inválido (se espera 2006-01-02): %w", err)
		}
		from = &t
	}
	if req.To != "" {
		t, err := time.Parse("2006-01-02", req.To)
		if err != nil {
			return nil, nil, fmt.Errorf("to inválido (se espera 2006-01-02): %w", err)
		}
		end := t.Add(24*time.Hour - time.Second)
		to = &end
	}
	if from == nil && to != nil {
		return nil, nil, fmt.Errorf("to requiere from")
	}
	return from, to, nil
}
