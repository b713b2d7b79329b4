package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exporthub/exporthub-api/internal/infrastructure/memory"
)

func TestGetProductByID(t *testing.T) {
	store := memory.NewSeeded()

	p, err := store.Products().GetByID(3)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Palm Oil CPO Grade A", p.Name)
	assert.Equal(t, "PAL-CPO-001", p.SKU)

	// id inexistente: ausencia, no error
	p, err = store.Products().GetByID(9999)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProductSKUsAreUnique(t *testing.T) {
	store := memory.NewSeeded()
	products, err := store.Products().List()
	require.NoError(t, err)
	require.Len(t, products, 10)

	seen := make(map[string]bool, len(products))
	for _, p := range products {
		assert.False(t, seen[p.SKU], "SKU duplicado: %s", p.SKU)
		seen[p.SKU] = true
	}
}

func TestListsPreserveFixtureOrder(t *testing.T) {
	store := memory.NewSeeded()

	invoices, err := store.Invoices().List()
	require.NoError(t, err)
	require.Len(t, invoices, 6)
	for i, inv := range invoices {
		assert.Equal(t, i+1, inv.ID)
	}

	items, err := store.Stock().ListItems()
	require.NoError(t, err)
	require.Len(t, items, 8)
	for i, it := range items {
		assert.Equal(t, i+1, it.ID)
	}
}

func TestListItemsByWarehouse(t *testing.T) {
	store := memory.NewSeeded()

	items, err := store.Stock().ListItemsByWarehouse(1)
	require.NoError(t, err)
	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []int{1, 2, 6, 8}, ids)

	items, err = store.Stock().ListItemsByWarehouse(99)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPaymentsByInvoice(t *testing.T) {
	store := memory.NewSeeded()

	payments, err := store.Payments().ListByInvoice(3)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "PAY-2024-002", payments[0].PaymentNumber)

	payments, err = store.Payments().ListByInvoice(2)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestFindUserByEmail(t *testing.T) {
	store := memory.NewSeeded()

	u, err := store.Users().FindByEmail("budi@exporthub.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "manager", u.Role)

	u, err = store.Users().FindByEmail("nadie@exporthub.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

// Los métodos devuelven copias: mutar un resultado no altera el snapshot.
func TestResultsAreCopies(t *testing.T) {
	store := memory.NewSeeded()

	p1, err := store.Products().GetByID(1)
	require.NoError(t, err)
	p1.Name = "mutado"
	p1.PriceUSD = 0

	p2, err := store.Products().GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Batik Premium Motif Parang", p2.Name)
	assert.Equal(t, 55.0, p2.PriceUSD)
}

func TestDashboardWidgets(t *testing.T) {
	store := memory.NewSeeded()

	kpis, err := store.Dashboard().KPIs()
	require.NoError(t, err)
	require.Len(t, kpis, 4)
	assert.Equal(t, "Total Stok", kpis[0].Title)

	sales, err := store.Dashboard().SalesSeries()
	require.NoError(t, err)
	require.Len(t, sales.Labels, 12)
	assert.Equal(t, 485000.0, sales.Revenue[11])

	top, err := store.Dashboard().TopProducts()
	require.NoError(t, err)
	require.Len(t, top, 5)
	assert.Equal(t, "Batik Premium", top[0].Name)
}
