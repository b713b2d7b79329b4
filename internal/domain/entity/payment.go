package entity

import "time"

// Métodos de pago aceptados.
const (
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCash         = "cash"
	PaymentMethodCredit       = "credit"
	PaymentMethodOther        = "other"
)

// Payment representa un abono registrado contra una factura. Varias Payment
// pueden referenciar la misma factura; la suma de sus importes debería
// conciliar con Invoice.PaidAmount (invariante implícita, ver finance.Reconciler).
type Payment struct {
	ID              int
	PaymentNumber   string // único en la colección
	InvoiceID       int
	InvoiceNumber   string
	OrderID         int
	OrderNumber     string
	BuyerName       string
	Amount          float64
	PaymentMethod   string // bank_transfer, cash, credit, other
	PaymentDate     string // YYYY-MM-DD
	ReferenceNumber string
	Notes           string
	CreatedAt       time.Time
}
