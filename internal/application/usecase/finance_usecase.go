package usecase

import (
	"github.com/exporthub/exporthub-api/internal/application/dto"
	"github.com/exporthub/exporthub-api/internal/domain/catalog"
	"github.com/exporthub/exporthub-api/internal/domain/entity"
	"github.com/exporthub/exporthub-api/internal/domain/repository"
	"github.com/exporthub/exporthub-api/pkg/money"
)

// FinanceUseCase consultas de facturas y pagos.
type FinanceUseCase struct {
	invoices repository.InvoiceRepository
	payments repository.PaymentRepository
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(invoices repository.InvoiceRepository, payments repository.PaymentRepository) *FinanceUseCase {
	return &FinanceUseCase{invoices: invoices, payments: payments}
}

// InvoiceByID obtiene una factura por id; (nil, nil) si no existe.
func (uc *FinanceUseCase) InvoiceByID(id int) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	return toInvoiceResponse(inv), nil
}

// InvoiceEntity obtiene la entidad de factura sin mapear a DTO; la usa la
// generación de PDF. (nil, nil) si no existe.
func (uc *FinanceUseCase) InvoiceEntity(id int) (*entity.Invoice, error) {
	return uc.invoices.GetByID(id)
}

// Invoices lista las facturas en el orden del snapshot.
func (uc *FinanceUseCase) Invoices() ([]dto.InvoiceResponse, error) {
	list, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvoiceResponse(inv))
	}
	return items, nil
}

// Payments lista los pagos en el orden del snapshot.
func (uc *FinanceUseCase) Payments() ([]dto.PaymentResponse, error) {
	list, err := uc.payments.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toPaymentResponse(p))
	}
	return items, nil
}

// Summary agregados de cartera con montos formateados en la moneda de las
// facturas (USD en el snapshot de demostración).
func (uc *FinanceUseCase) Summary() (*dto.FinanceSummaryResponse, error) {
	list, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	var receivable, paid float64
	currencyCode := "USD"
	for _, inv := range list {
		if inv.PaymentStatus != entity.PaymentStatusPaid {
			receivable += inv.Total - inv.PaidAmount
		}
		paid += inv.PaidAmount
		if inv.Currency != "" {
			currencyCode = inv.Currency
		}
	}
	return &dto.FinanceSummaryResponse{
		TotalReceivable:          receivable,
		TotalPaid:                paid,
		TotalReceivableFormatted: money.Format(receivable, currencyCode),
		TotalPaidFormatted:       money.Format(paid, currencyCode),
	}, nil
}

// PaymentsByInvoice lista los pagos aplicados a una factura.
func (uc *FinanceUseCase) PaymentsByInvoice(invoiceID int) ([]dto.PaymentResponse, error) {
	list, err := uc.payments.ListByInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toPaymentResponse(p))
	}
	return items, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	items := make([]dto.InvoiceItemDTO, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.InvoiceItemDTO{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		OrderID:       inv.OrderID,
		OrderNumber:   inv.OrderNumber,
		BuyerName:     inv.BuyerName,
		BuyerAddress:  inv.BuyerAddress,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		Status:        toOption(catalog.InvoiceStatuses.Resolve(inv.Status)),
		PaymentStatus: toOption(catalog.PaymentStatuses.Resolve(inv.PaymentStatus)),
		Items:         items,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		TaxRate:       inv.TaxRate,
		Total:         inv.Total,
		Currency:      inv.Currency,
		Notes:         inv.Notes,
		PaidAmount:    inv.PaidAmount,
		PaidDate:      inv.PaidDate,
		Outstanding:   inv.Outstanding(),
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

func toPaymentResponse(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:              p.ID,
		PaymentNumber:   p.PaymentNumber,
		InvoiceID:       p.InvoiceID,
		InvoiceNumber:   p.InvoiceNumber,
		OrderID:         p.OrderID,
		OrderNumber:     p.OrderNumber,
		BuyerName:       p.BuyerName,
		Amount:          p.Amount,
		PaymentMethod:   p.PaymentMethod,
		MethodLabel:     catalog.PaymentMethods.Label(p.PaymentMethod),
		PaymentDate:     p.PaymentDate,
		ReferenceNumber: p.ReferenceNumber,
		Notes:           p.Notes,
		CreatedAt:       p.CreatedAt,
	}
}
