package entity

import "time"

// Estados de factura.
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusSent      = "sent"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// Estados de pago de una factura. PaymentStatus es 'paid' sii
// PaidAmount == Total, 'partial' sii 0 < PaidAmount < Total y
// 'unpaid' sii PaidAmount == 0.
const (
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
)

// InvoiceItem línea de factura: TotalPrice = Quantity × UnitPrice.
type InvoiceItem struct {
	ID          int
	Description string
	Quantity    float64
	Unit        string
	UnitPrice   float64
	TotalPrice  float64
}

// Invoice representa la cabecera de una factura de exportación.
// Importes en float64 (doble IEEE-754): la aritmética de los agregados debe
// reproducir exactamente la del sistema de origen.
// Invariantes: Total = Subtotal + Tax; Tax = Subtotal × TaxRate/100;
// PaidAmount ≤ Total.
type Invoice struct {
	ID            int
	InvoiceNumber string // único en la colección
	OrderID       int
	OrderNumber   string
	BuyerName     string
	BuyerAddress  string
	IssueDate     string // YYYY-MM-DD
	DueDate       string
	Status        string // draft, sent, paid, overdue, cancelled
	PaymentStatus string // unpaid, partial, paid
	Items         []InvoiceItem
	Subtotal      float64
	Tax           float64
	TaxRate       float64 // porcentaje, ej. 10
	Total         float64
	Currency      string
	Notes         string
	PaidAmount    float64
	PaidDate      string // vacío si no hay pago
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Outstanding devuelve el saldo pendiente de cobro de la factura.
func (i *Invoice) Outstanding() float64 {
	return i.Total - i.PaidAmount
}
