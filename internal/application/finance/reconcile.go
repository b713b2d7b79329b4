// Package finance contiene la conciliación consultiva entre los montos
// cobrados registrados en las facturas y la suma de sus pagos. Es un chequeo
// de consistencia interna del snapshot: no modifica datos ni bloquea lecturas.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/exporthub/exporthub-api/internal/application/dto"
	"github.com/exporthub/exporthub-api/internal/domain/repository"
)

// Reconciler compara PaidAmount por factura contra la suma de sus pagos.
// La comparación usa aritmética decimal: dos centavos que difieren por
// redondeo binario no deben reportarse como discrepancia.
type Reconciler struct {
	invoices repository.InvoiceRepository
	payments repository.PaymentRepository
}

// NewReconciler construye el conciliador.
func NewReconciler(invoices repository.InvoiceRepository, payments repository.PaymentRepository) *Reconciler {
	return &Reconciler{invoices: invoices, payments: payments}
}

// Run recorre todas las facturas y reporta aquellas cuyo PaidAmount no
// coincide con la suma decimal de sus pagos.
func (r *Reconciler) Run() (*dto.ReconciliationResponse, error) {
	invoices, err := r.invoices.List()
	if err != nil {
		return nil, err
	}

	out := &dto.ReconciliationResponse{Consistent: true}
	for _, inv := range invoices {
		payments, err := r.payments.ListByInvoice(inv.ID)
		if err != nil {
			return nil, err
		}
		sum := decimal.Zero
		for _, p := range payments {
			sum = sum.Add(decimal.NewFromFloat(p.Amount))
		}
		recorded := decimal.NewFromFloat(inv.PaidAmount)
		if diff := recorded.Sub(sum); !diff.IsZero() {
			out.Consistent = false
			out.Discrepancies = append(out.Discrepancies, dto.ReconciliationEntry{
				InvoiceID:     inv.ID,
				InvoiceNumber: inv.InvoiceNumber,
				PaidAmount:    inv.PaidAmount,
				PaymentsTotal: sum.InexactFloat64(),
				Difference:    diff.StringFixed(2),
			})
		}
	}
	return out, nil
}
