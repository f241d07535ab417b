package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	appanalytics "github.com/jhoicas/importadora-api/internal/application/analytics"
	"github.com/jhoicas/importadora-api/internal/domain/repository"
	"github.com/jhoicas/importadora-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductRepo     repository.ProductRepository
	ProfitabilityUC *appanalytics.ProfitabilityUseCase
	PDFGenerator    *pdf.ProfitabilityPDFGenerator
	DefaultFxRate   decimal.Decimal
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo (solo lectura)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductRepo)
	products.Get("/", productHandler.List)

	// Analítica de rentabilidad
	analytics := api.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.ProfitabilityUC, deps.PDFGenerator, deps.DefaultFxRate)
	analytics.Get("/rentabilidad", analyticsHandler.GetProductReports)
	analytics.Get("/rentabilidad/pdf", analyticsHandler.GetProductReportsPDF)
}
