package repository

import "github.com/exporthub/exporthub-api/internal/domain/entity"

// InvoiceRepository puerto de lectura para Invoice.
type InvoiceRepository interface {
	GetByID(id int) (*entity.Invoice, error)
	List() ([]*entity.Invoice, error)
}

// PaymentRepository puerto de lectura para Payment.
type PaymentRepository interface {
	GetByID(id int) (*entity.Payment, error)
	List() ([]*entity.Payment, error)
	ListByInvoice(invoiceID int) ([]*entity.Payment, error)
}
