package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exporthub/exporthub-api/internal/infrastructure/memory"
)

func buildUseCase() *DashboardUseCase {
	store := memory.NewSeeded()
	return NewDashboardUseCase(store.Invoices(), store.Stock(), store.Users(), store.Dashboard())
}

// ── Agregados financieros ──────────────────────────────────────────────

func TestTotalReceivable(t *testing.T) {
	uc := buildUseCase()

	got, err := uc.TotalReceivable()
	require.NoError(t, err)

	// Facturas no pagadas del snapshot: 34100 + (46750-20000) + 15235 + 31350.
	assert.Equal(t, 107435.0, got)
}

func TestTotalPaid(t *testing.T) {
	uc := buildUseCase()

	got, err := uc.TotalPaid()
	require.NoError(t, err)

	// 19800 + 20000 + 41800.
	assert.Equal(t, 81600.0, got)
}

func TestReceivableExcludesPaidInvoices(t *testing.T) {
	uc := buildUseCase()

	receivable, err := uc.TotalReceivable()
	require.NoError(t, err)
	paid, err := uc.TotalPaid()
	require.NoError(t, err)

	invoices, err := memory.NewSeeded().Invoices().List()
	require.NoError(t, err)
	var grandTotal float64
	for _, inv := range invoices {
		grandTotal += inv.Total
	}

	// Las facturas pagadas no aportan cartera: cobrado + por cobrar = total.
	assert.Equal(t, grandTotal, receivable+paid)
}

// ── Stock ──────────────────────────────────────────────────────────────

func TestStockAlerts(t *testing.T) {
	uc := buildUseCase()

	alerts, err := uc.StockAlerts()
	require.NoError(t, err)
	require.Len(t, alerts, 3)

	// Orden del snapshot preservado.
	assert.Equal(t, 2, alerts[0].ID)
	assert.Equal(t, 5, alerts[1].ID)
	assert.Equal(t, 6, alerts[2].ID)
	for _, it := range alerts {
		assert.True(t, it.IsLow())
	}
}

func TestTotalStockValue(t *testing.T) {
	uc := buildUseCase()

	got, err := uc.TotalStockValue()
	require.NoError(t, err)

	// Suma de cantidades de las 8 existencias.
	assert.Equal(t, 1003.0, got)
}

func TestStockByWarehouse(t *testing.T) {
	uc := buildUseCase()

	items, err := uc.StockByWarehouse(1)
	require.NoError(t, err)
	require.Len(t, items, 4)
	for _, it := range items {
		assert.Equal(t, 1, it.WarehouseID)
	}

	empty, err := uc.StockByWarehouse(999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// ── Directorio ─────────────────────────────────────────────────────────

func TestUserCounts(t *testing.T) {
	uc := buildUseCase()

	active, err := uc.ActiveUserCount()
	require.NoError(t, err)
	assert.Equal(t, 6, active)

	admins, err := uc.AdminCount()
	require.NoError(t, err)
	assert.Equal(t, 1, admins)
}

// ── Resumen ────────────────────────────────────────────────────────────

func TestSummary(t *testing.T) {
	uc := buildUseCase()

	sum, err := uc.Summary()
	require.NoError(t, err)

	assert.Equal(t, 107435.0, sum.TotalReceivable)
	assert.Equal(t, 81600.0, sum.TotalPaid)
	assert.Equal(t, 1003.0, sum.TotalStockValue)
	assert.Equal(t, 6, sum.ActiveUsers)
	assert.Equal(t, 1, sum.Admins)
	assert.Len(t, sum.KPIs, 4)
	assert.Len(t, sum.Sales.Labels, 12)
	assert.Len(t, sum.TopProducts, 5)
	assert.Len(t, sum.RecentActivities, 5)
	require.Len(t, sum.StockAlerts, 3)
	assert.True(t, sum.StockAlerts[0].IsLow)
}

func TestSummaryIsIdempotent(t *testing.T) {
	uc := buildUseCase()

	first, err := uc.Summary()
	require.NoError(t, err)
	second, err := uc.Summary()
	require.NoError(t, err)

	// Lecturas repetidas sobre el mismo snapshot devuelven lo mismo.
	assert.Equal(t, first, second)
}
