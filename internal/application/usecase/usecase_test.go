package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exporthub/exporthub-api/internal/infrastructure/memory"
)

// ── Productos ──────────────────────────────────────────────────────────

func TestProductGetByID(t *testing.T) {
	store := memory.NewSeeded()
	uc := NewProductUseCase(store.Products())

	p, err := uc.GetByID(3)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Palm Oil CPO Grade A", p.Name)
	assert.NotEmpty(t, p.CategoryLabel)
	assert.Equal(t, p.Status.Code, "aktif")
	assert.NotEmpty(t, p.Status.Label)
}

func TestProductGetByIDAusente(t *testing.T) {
	store := memory.NewSeeded()
	uc := NewProductUseCase(store.Products())

	p, err := uc.GetByID(9999)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProductCatalogs(t *testing.T) {
	store := memory.NewSeeded()
	uc := NewProductUseCase(store.Products())

	cat := uc.Catalogs()
	assert.NotEmpty(t, cat.Categories)
	assert.NotEmpty(t, cat.Statuses)
	assert.NotEmpty(t, cat.Units)

	// La copia de unidades no comparte backing array con la tabla.
	cat.Units[0] = "mutada"
	assert.NotEqual(t, "mutada", uc.Catalogs().Units[0])
}

// ── Finanzas ───────────────────────────────────────────────────────────

func TestFinanceInvoiceOutstanding(t *testing.T) {
	store := memory.NewSeeded()
	uc := NewFinanceUseCase(store.Invoices(), store.Payments())

	inv, err := uc.InvoiceByID(3)
	require.NoError(t, err)
	require.NotNil(t, inv)

	// 46750 − 20000 de pago parcial.
	assert.Equal(t, 26750.0, inv.Outstanding)
	assert.Equal(t, "partial", inv.PaymentStatus.Code)
}

func TestFinanceSummaryFormatted(t *testing.T) {
	store := memory.NewSeeded()
	uc := NewFinanceUseCase(store.Invoices(), store.Payments())

	sum, err := uc.Summary()
	require.NoError(t, err)

	assert.Equal(t, 107435.0, sum.TotalReceivable)
	assert.Equal(t, 81600.0, sum.TotalPaid)
	assert.Equal(t, "$107,435.00", sum.TotalReceivableFormatted)
	assert.Equal(t, "$81,600.00", sum.TotalPaidFormatted)
}

func TestFinancePaymentsByInvoice(t *testing.T) {
	store := memory.NewSeeded()
	uc := NewFinanceUseCase(store.Invoices(), store.Payments())

	payments, err := uc.PaymentsByInvoice(3)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "PAY-2024-002", payments[0].PaymentNumber)
	assert.NotEmpty(t, payments[0].MethodLabel)
}

// ── Stock ──────────────────────────────────────────────────────────────

func TestStockAlertsEnOrden(t *testing.T) {
	store := memory.NewSeeded()
	uc := NewStockUseCase(store.Stock(), store.Warehouses())

	alerts, err := uc.Alerts()
	require.NoError(t, err)
	require.Len(t, alerts, 3)
	assert.Equal(t, []int{alerts[0].ID, alerts[1].ID, alerts[2].ID}, []int{2, 5, 6})
	for _, a := range alerts {
		assert.True(t, a.IsLow)
	}
}

func TestStockMutationsResueltas(t *testing.T) {
	store := memory.NewSeeded()
	uc := NewStockUseCase(store.Stock(), store.Warehouses())

	muts, err := uc.Mutations()
	require.NoError(t, err)
	require.NotEmpty(t, muts)
	for _, m := range muts {
		assert.NotEmpty(t, m.Type.Label)
		assert.NotEmpty(t, m.Status.Label)
	}
}

// ── Usuarios ───────────────────────────────────────────────────────────

func TestUserStats(t *testing.T) {
	store := memory.NewSeeded()
	uc := NewUserUseCase(store.Users())

	stats, err := uc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 6, stats.ActiveUsers)
	assert.Equal(t, 1, stats.Admins)
}

// ── Envíos ─────────────────────────────────────────────────────────────

func TestShipmentEtiquetasResueltas(t *testing.T) {
	store := memory.NewSeeded()
	uc := NewShipmentUseCase(store.Shipments())

	list, err := uc.List()
	require.NoError(t, err)
	require.NotEmpty(t, list)
	for _, sh := range list {
		assert.NotEmpty(t, sh.TransportModeLabel)
		assert.NotEmpty(t, sh.Status.Label)
	}
}
