package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exporthub/exporthub-api/internal/application/analytics"
	"github.com/exporthub/exporthub-api/internal/application/auth"
	"github.com/exporthub/exporthub-api/internal/application/finance"
	"github.com/exporthub/exporthub-api/internal/application/usecase"
	"github.com/exporthub/exporthub-api/internal/infrastructure/excel"
	"github.com/exporthub/exporthub-api/internal/infrastructure/memory"
	"github.com/exporthub/exporthub-api/internal/infrastructure/pdf"
	apphttp "github.com/exporthub/exporthub-api/internal/interfaces/http"
)

// buildAPI arma la aplicación completa sobre el snapshot de demostración.
func buildAPI() *fiber.App {
	store := memory.NewSeeded()
	jwtCfg := auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(store.Products()),
		StockUC:     usecase.NewStockUseCase(store.Stock(), store.Warehouses()),
		FinanceUC:   usecase.NewFinanceUseCase(store.Invoices(), store.Payments()),
		ShipmentUC:  usecase.NewShipmentUseCase(store.Shipments()),
		UserUC:      usecase.NewUserUseCase(store.Users()),
		DashboardUC: analytics.NewDashboardUseCase(store.Invoices(), store.Stock(), store.Users(), store.Dashboard()),
		AuthUC:      auth.NewAuthUseCase(store.Users(), jwtCfg, time.Duration(0)),
		Reconciler:  finance.NewReconciler(store.Invoices(), store.Payments()),
		StockRepo:   store.Stock(),
		PDFGen:      pdf.NewInvoicePDFGenerator("exporthub-api"),
		ExcelGen:    excel.NewStockReportGenerator(),
		JWTSecret:   testJWTSecret,
	})
	return app
}

func apiGet(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ── Rutas públicas ─────────────────────────────────────────────────────

func TestRouter_Health(t *testing.T) {
	app := buildAPI()
	resp := apiGet(t, app, "/health", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_LoginEmiteTokenUsable(t *testing.T) {
	app := buildAPI()

	body := bytes.NewBufferString(`{"email":"admin@exporthub.com","password":"exporthub123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	decodeJSON(t, resp, &login)
	require.True(t, login.Success)
	require.NotEmpty(t, login.Token)

	// El token emitido debe abrir una ruta protegida.
	resp = apiGet(t, app, "/api/dashboard/summary", "Bearer "+login.Token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ── Productos ──────────────────────────────────────────────────────────

func TestRouter_ProductoPorID(t *testing.T) {
	app := buildAPI()
	token := tokenForRole(t, "admin")

	resp := apiGet(t, app, "/api/products/3", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var product struct {
		Name string `json:"name"`
	}
	decodeJSON(t, resp, &product)
	assert.Equal(t, "Palm Oil CPO Grade A", product.Name)
}

func TestRouter_ProductoAusenteDa404(t *testing.T) {
	app := buildAPI()
	resp := apiGet(t, app, "/api/products/9999", tokenForRole(t, "admin"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ── Autorización por módulo ────────────────────────────────────────────

func TestRouter_ViewerBloqueadoEnFinanzas(t *testing.T) {
	app := buildAPI()
	resp := apiGet(t, app, "/api/finance/invoices", tokenForRole(t, "viewer"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouter_ViewerAccedeReportes(t *testing.T) {
	app := buildAPI()
	resp := apiGet(t, app, "/api/reports/stock.xlsx", tokenForRole(t, "viewer"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
}

// ── Finanzas ───────────────────────────────────────────────────────────

func TestRouter_ResumenFinanciero(t *testing.T) {
	app := buildAPI()
	resp := apiGet(t, app, "/api/finance/summary", tokenForRole(t, "admin"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary struct {
		TotalReceivable float64 `json:"total_receivable"`
		TotalPaid       float64 `json:"total_paid"`
	}
	decodeJSON(t, resp, &summary)
	assert.Equal(t, 107435.0, summary.TotalReceivable)
	assert.Equal(t, 81600.0, summary.TotalPaid)
}

func TestRouter_ConciliacionSinDiscrepancias(t *testing.T) {
	app := buildAPI()
	resp := apiGet(t, app, "/api/finance/reconciliation", tokenForRole(t, "admin"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rec struct {
		Consistent bool `json:"consistent"`
	}
	decodeJSON(t, resp, &rec)
	assert.True(t, rec.Consistent)
}

func TestRouter_FacturaPDF(t *testing.T) {
	app := buildAPI()
	resp := apiGet(t, app, "/api/finance/invoices/1/pdf", tokenForRole(t, "admin"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

// ── Stock ──────────────────────────────────────────────────────────────

func TestRouter_AlertasDeStock(t *testing.T) {
	app := buildAPI()
	resp := apiGet(t, app, "/api/stock/alerts", tokenForRole(t, "warehouse"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var alerts []struct {
		ID    int  `json:"id"`
		IsLow bool `json:"is_low"`
	}
	decodeJSON(t, resp, &alerts)
	require.Len(t, alerts, 3)
	assert.Equal(t, 2, alerts[0].ID)
	assert.Equal(t, 5, alerts[1].ID)
	assert.Equal(t, 6, alerts[2].ID)
}

func TestRouter_StockPorBodega(t *testing.T) {
	app := buildAPI()
	resp := apiGet(t, app, "/api/stock/items?warehouse_id=1", tokenForRole(t, "warehouse"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []struct {
		WarehouseID int `json:"warehouse_id"`
	}
	decodeJSON(t, resp, &items)
	require.Len(t, items, 4)
	for _, it := range items {
		assert.Equal(t, 1, it.WarehouseID)
	}
}

// ── Usuarios ───────────────────────────────────────────────────────────

func TestRouter_ListadoDeUsuariosSinHash(t *testing.T) {
	app := buildAPI()
	resp := apiGet(t, app, "/api/users/", tokenForRole(t, "admin"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw []map[string]interface{}
	decodeJSON(t, resp, &raw)
	require.Len(t, raw, 8)
	for _, u := range raw {
		assert.NotContains(t, u, "password_hash")
	}
}
