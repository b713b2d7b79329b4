package dto

import "time"

// InvoiceItemDTO línea de factura.
type InvoiceItemDTO struct {
	ID          int     `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// InvoiceResponse factura con estados resueltos a etiquetas.
type InvoiceResponse struct {
	ID            int              `json:"id"`
	InvoiceNumber string           `json:"invoice_number"`
	OrderID       int              `json:"order_id"`
	OrderNumber   string           `json:"order_number"`
	BuyerName     string           `json:"buyer_name"`
	BuyerAddress  string           `json:"buyer_address"`
	IssueDate     string           `json:"issue_date"`
	DueDate       string           `json:"due_date"`
	Status        OptionDTO        `json:"status"`
	PaymentStatus OptionDTO        `json:"payment_status"`
	Items         []InvoiceItemDTO `json:"items"`
	Subtotal      float64          `json:"subtotal"`
	Tax           float64          `json:"tax"`
	TaxRate       float64          `json:"tax_rate"`
	Total         float64          `json:"total"`
	Currency      string           `json:"currency"`
	Notes         string           `json:"notes"`
	PaidAmount    float64          `json:"paid_amount"`
	PaidDate      string           `json:"paid_date,omitempty"`
	Outstanding   float64          `json:"outstanding"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// PaymentResponse pago con método resuelto a etiqueta.
type PaymentResponse struct {
	ID              int       `json:"id"`
	PaymentNumber   string    `json:"payment_number"`
	InvoiceID       int       `json:"invoice_id"`
	InvoiceNumber   string    `json:"invoice_number"`
	OrderID         int       `json:"order_id"`
	OrderNumber     string    `json:"order_number"`
	BuyerName       string    `json:"buyer_name"`
	Amount          float64   `json:"amount"`
	PaymentMethod   string    `json:"payment_method"`
	MethodLabel     string    `json:"method_label"`
	PaymentDate     string    `json:"payment_date"`
	ReferenceNumber string    `json:"reference_number"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

// FinanceSummaryResponse agregados de cartera.
type FinanceSummaryResponse struct {
	TotalReceivable          float64 `json:"total_receivable"`
	TotalPaid                float64 `json:"total_paid"`
	TotalReceivableFormatted string  `json:"total_receivable_formatted"`
	TotalPaidFormatted       string  `json:"total_paid_formatted"`
}

// ReconciliationEntry discrepancia entre la suma de pagos de una factura y su
// PaidAmount registrado.
type ReconciliationEntry struct {
	InvoiceID     int     `json:"invoice_id"`
	InvoiceNumber string  `json:"invoice_number"`
	PaidAmount    float64 `json:"paid_amount"`
	PaymentsTotal float64 `json:"payments_total"`
	Difference    string  `json:"difference"` // decimal exacto, con signo
}

// ReconciliationResponse resultado de la conciliación consultiva.
type ReconciliationResponse struct {
	Consistent    bool                  `json:"consistent"`
	Discrepancies []ReconciliationEntry `json:"discrepancies"`
}
