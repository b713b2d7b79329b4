package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exporthub/exporthub-api/internal/domain/entity"
	"github.com/exporthub/exporthub-api/internal/infrastructure/memory"
)

func TestReconcileSeededSnapshot(t *testing.T) {
	store := memory.NewSeeded()
	r := NewReconciler(store.Invoices(), store.Payments())

	res, err := r.Run()
	require.NoError(t, err)

	// Los fixtures están conciliados: cada PaidAmount coincide con sus pagos.
	assert.True(t, res.Consistent)
	assert.Empty(t, res.Discrepancies)
}

func TestReconcileDetectsDiscrepancy(t *testing.T) {
	ds := memory.Dataset{
		Invoices: []entity.Invoice{
			{ID: 1, InvoiceNumber: "INV-001", Total: 1000, PaidAmount: 1000, PaymentStatus: entity.PaymentStatusPaid},
			{ID: 2, InvoiceNumber: "INV-002", Total: 500, PaidAmount: 300, PaymentStatus: entity.PaymentStatusPartial},
		},
		Payments: []entity.Payment{
			{ID: 1, PaymentNumber: "PAY-001", InvoiceID: 1, Amount: 600},
			{ID: 2, PaymentNumber: "PAY-002", InvoiceID: 1, Amount: 400},
			{ID: 3, PaymentNumber: "PAY-003", InvoiceID: 2, Amount: 250.50},
		},
	}
	store := memory.NewStore(ds)
	r := NewReconciler(store.Invoices(), store.Payments())

	res, err := r.Run()
	require.NoError(t, err)

	assert.False(t, res.Consistent)
	require.Len(t, res.Discrepancies, 1)

	d := res.Discrepancies[0]
	assert.Equal(t, 2, d.InvoiceID)
	assert.Equal(t, "INV-002", d.InvoiceNumber)
	assert.Equal(t, 300.0, d.PaidAmount)
	assert.Equal(t, 250.50, d.PaymentsTotal)
	assert.Equal(t, "49.50", d.Difference)
}

func TestReconcileInvoiceWithoutPayments(t *testing.T) {
	ds := memory.Dataset{
		Invoices: []entity.Invoice{
			{ID: 1, InvoiceNumber: "INV-001", Total: 800, PaidAmount: 0, PaymentStatus: entity.PaymentStatusUnpaid},
		},
	}
	store := memory.NewStore(ds)
	r := NewReconciler(store.Invoices(), store.Payments())

	res, err := r.Run()
	require.NoError(t, err)

	// Sin pagos y PaidAmount en cero no hay discrepancia.
	assert.True(t, res.Consistent)
}
