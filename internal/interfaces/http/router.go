package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/exporthub/exporthub-api/internal/application/analytics"
	"github.com/exporthub/exporthub-api/internal/application/auth"
	"github.com/exporthub/exporthub-api/internal/application/finance"
	"github.com/exporthub/exporthub-api/internal/application/usecase"
	"github.com/exporthub/exporthub-api/internal/domain/rbac"
	"github.com/exporthub/exporthub-api/internal/domain/repository"
	"github.com/exporthub/exporthub-api/internal/infrastructure/excel"
	"github.com/exporthub/exporthub-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	StockUC     *usecase.StockUseCase
	FinanceUC   *usecase.FinanceUseCase
	ShipmentUC  *usecase.ShipmentUseCase
	UserUC      *usecase.UserUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	Reconciler  *finance.Reconciler
	StockRepo   repository.StockRepository
	PDFGen      *pdf.InvoicePDFGenerator
	ExcelGen    *excel.StockReportGenerator
	JWTSecret   string
}

// Router registra las rutas de la API. Cada grupo protegido exige el JWT y la
// capacidad de su módulo.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(MetricsMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", MetricsHandler())

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard
	dashboard := protected.Group("/dashboard", RequirePermission(rbac.CapDashboard))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)

	// Products
	products := protected.Group("/products", RequirePermission(rbac.CapBarang))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/catalogs", productHandler.Catalogs)
	products.Get("/:id", productHandler.GetByID)

	// Stock
	stock := protected.Group("/stock", RequirePermission(rbac.CapStok))
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/items", stockHandler.Items)
	stock.Get("/items/:id", stockHandler.ItemByID)
	stock.Get("/alerts", stockHandler.Alerts)
	stock.Get("/mutations", stockHandler.Mutations)
	stock.Get("/warehouses", stockHandler.Warehouses)
	stock.Get("/warehouses/:id", stockHandler.WarehouseByID)

	// Finance
	financeGroup := protected.Group("/finance", RequirePermission(rbac.CapKeuangan))
	financeHandler := NewFinanceHandler(deps.FinanceUC, deps.Reconciler, deps.PDFGen)
	financeGroup.Get("/invoices", financeHandler.Invoices)
	financeGroup.Get("/invoices/:id", financeHandler.InvoiceByID)
	financeGroup.Get("/invoices/:id/payments", financeHandler.InvoicePayments)
	financeGroup.Get("/invoices/:id/pdf", financeHandler.InvoicePDF)
	financeGroup.Get("/payments", financeHandler.Payments)
	financeGroup.Get("/summary", financeHandler.Summary)
	financeGroup.Get("/reconciliation", financeHandler.Reconcile)

	// Shipments
	shipments := protected.Group("/shipments", RequirePermission(rbac.CapPengiriman))
	shipmentHandler := NewShipmentHandler(deps.ShipmentUC)
	shipments.Get("/", shipmentHandler.List)
	shipments.Get("/:id", shipmentHandler.GetByID)

	// Users
	users := protected.Group("/users", RequirePermission(rbac.CapPengguna))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/stats", userHandler.Stats)
	users.Get("/:id", userHandler.GetByID)

	// Reports
	reports := protected.Group("/reports", RequirePermission(rbac.CapLaporan))
	reportHandler := NewReportHandler(deps.StockRepo, deps.ExcelGen)
	reports.Get("/stock.xlsx", reportHandler.StockXLSX)
}
