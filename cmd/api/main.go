package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	appanalytics "github.com/jhoicas/importadora-api/internal/application/analytics"
	"github.com/jhoicas/importadora-api/internal/infrastructure/pdf"
	"github.com/jhoicas/importadora-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/importadora-api/internal/interfaces/http"
	"github.com/jhoicas/importadora-api/pkg/config"
	"github.com/jhoicas/importadora-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)

	profitabilityUC := appanalytics.NewProfitabilityUseCase(
		productRepo, purchaseRepo, saleRepo, expenseRepo,
		appanalytics.Config{
			FlatHandlingFeePerUnit: decimal.NewFromFloat(cfg.Analytics.FlatHandlingFee),
			DeliveryLeadDays:       cfg.Analytics.DeliveryLeadDays,
			SoldStatuses:           cfg.Analytics.SoldStatuses,
		},
		log,
	)
	pdfGenerator := pdf.NewProfitabilityPDFGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // el reporte PDF puede tardar más que un JSON
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Importadora API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductRepo:     productRepo,
		ProfitabilityUC: profitabilityUC,
		PDFGenerator:    pdfGenerator,
		DefaultFxRate:   decimal.NewFromFloat(cfg.Analytics.DefaultFxRate),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
