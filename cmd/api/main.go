package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/exporthub/exporthub-api/internal/application/analytics"
	"github.com/exporthub/exporthub-api/internal/application/auth"
	appfinance "github.com/exporthub/exporthub-api/internal/application/finance"
	"github.com/exporthub/exporthub-api/internal/application/usecase"
	infraexcel "github.com/exporthub/exporthub-api/internal/infrastructure/excel"
	"github.com/exporthub/exporthub-api/internal/infrastructure/memory"
	infrapdf "github.com/exporthub/exporthub-api/internal/infrastructure/pdf"
	httpRouter "github.com/exporthub/exporthub-api/internal/interfaces/http"
	"github.com/exporthub/exporthub-api/pkg/config"
	"github.com/exporthub/exporthub-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	// Snapshot en memoria: sin base de datos, todo se carga al arranque.
	store := memory.NewSeeded()

	productUC := usecase.NewProductUseCase(store.Products())
	stockUC := usecase.NewStockUseCase(store.Stock(), store.Warehouses())
	financeUC := usecase.NewFinanceUseCase(store.Invoices(), store.Payments())
	shipmentUC := usecase.NewShipmentUseCase(store.Shipments())
	userUC := usecase.NewUserUseCase(store.Users())
	dashboardUC := appanalytics.NewDashboardUseCase(store.Invoices(), store.Stock(), store.Users(), store.Dashboard())
	reconciler := appfinance.NewReconciler(store.Invoices(), store.Payments())

	authUC := auth.NewAuthUseCase(store.Users(), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, time.Duration(cfg.Auth.LoginDelayMS)*time.Millisecond)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		StockUC:     stockUC,
		FinanceUC:   financeUC,
		ShipmentUC:  shipmentUC,
		UserUC:      userUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		Reconciler:  reconciler,
		StockRepo:   store.Stock(),
		PDFGen:      infrapdf.NewInvoicePDFGenerator(cfg.App.Name),
		ExcelGen:    infraexcel.NewStockReportGenerator(),
		JWTSecret:   cfg.JWT.Secret,
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
