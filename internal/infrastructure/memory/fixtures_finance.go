package memory

import "github.com/exporthub/exporthub-api/internal/domain/entity"

func seedInvoices() []entity.Invoice {
	return []entity.Invoice{
		{
			ID: 1, InvoiceNumber: "INV-2024-001", OrderID: 2, OrderNumber: "SO-2024-002",
			BuyerName: "Global Trading Pte Ltd", BuyerAddress: "123 Trade Avenue, Singapore 018956",
			IssueDate: "2024-01-15", DueDate: "2024-02-14",
			Status: entity.InvoiceStatusPaid, PaymentStatus: entity.PaymentStatusPaid,
			Items: []entity.InvoiceItem{
				{ID: 1, Description: "Premium Coffee Beans Grade A", Quantity: 1000, Unit: "kg", UnitPrice: 12.50, TotalPrice: 12500},
				{ID: 2, Description: "Premium Coffee Beans Grade B", Quantity: 500, Unit: "kg", UnitPrice: 8.75, TotalPrice: 4375},
				{ID: 3, Description: "Packaging - 500g bags", Quantity: 1500, Unit: "pcs", UnitPrice: 0.75, TotalPrice: 1125},
			},
			Subtotal: 18000, Tax: 1800, TaxRate: 10, Total: 19800, Currency: "USD",
			Notes: "Payment received via bank transfer", PaidAmount: 19800, PaidDate: "2024-02-10",
			CreatedAt: mustTime("2024-01-15T10:00:00Z"), UpdatedAt: mustTime("2024-02-10T14:00:00Z"),
		},
		{
			ID: 2, InvoiceNumber: "INV-2024-002", OrderID: 3, OrderNumber: "SO-2024-003",
			BuyerName: "Tokyo Imports Co", BuyerAddress: "456 Import Street, Tokyo 100-0001, Japan",
			IssueDate: "2024-01-20", DueDate: "2024-02-19",
			Status: entity.InvoiceStatusSent, PaymentStatus: entity.PaymentStatusUnpaid,
			Items: []entity.InvoiceItem{
				{ID: 1, Description: "Organic Black Tea", Quantity: 2000, Unit: "kg", UnitPrice: 8.00, TotalPrice: 16000},
				{ID: 2, Description: "Green Tea Premium", Quantity: 1000, Unit: "kg", UnitPrice: 15.00, TotalPrice: 15000},
			},
			Subtotal: 31000, Tax: 3100, TaxRate: 10, Total: 34100, Currency: "USD",
			Notes: "Shipment in transit", PaidAmount: 0,
			CreatedAt: mustTime("2024-01-20T10:00:00Z"), UpdatedAt: mustTime("2024-01-20T10:00:00Z"),
		},
		{
			ID: 3, InvoiceNumber: "INV-2024-003", OrderID: 4, OrderNumber: "SO-2024-004",
			BuyerName: "Seoul Distributors Inc", BuyerAddress: "789 Distribution Road, Seoul 06234, South Korea",
			IssueDate: "2024-01-25", DueDate: "2024-02-24",
			Status: entity.InvoiceStatusSent, PaymentStatus: entity.PaymentStatusPartial,
			Items: []entity.InvoiceItem{
				{ID: 1, Description: "Palm Oil - Crude", Quantity: 50000, Unit: "kg", UnitPrice: 0.85, TotalPrice: 42500},
			},
			Subtotal: 42500, Tax: 4250, TaxRate: 10, Total: 46750, Currency: "USD",
			Notes: "Partial payment received", PaidAmount: 20000, PaidDate: "2024-02-05",
			CreatedAt: mustTime("2024-01-25T10:00:00Z"), UpdatedAt: mustTime("2024-02-05T14:00:00Z"),
		},
		{
			ID: 4, InvoiceNumber: "INV-2024-004", OrderID: 6, OrderNumber: "SO-2024-006",
			BuyerName: "Sydney Merchants Pty", BuyerAddress: "321 Merchant Blvd, Sydney NSW 2000, Australia",
			IssueDate: "2024-01-10", DueDate: "2024-02-09",
			Status: entity.InvoiceStatusOverdue, PaymentStatus: entity.PaymentStatusUnpaid,
			Items: []entity.InvoiceItem{
				{ID: 1, Description: "Cocoa Beans - Premium", Quantity: 3000, Unit: "kg", UnitPrice: 3.20, TotalPrice: 9600},
				{ID: 2, Description: "Cocoa Butter", Quantity: 500, Unit: "kg", UnitPrice: 8.50, TotalPrice: 4250},
			},
			Subtotal: 13850, Tax: 1385, TaxRate: 10, Total: 15235, Currency: "USD",
			Notes: "Payment overdue - reminder sent", PaidAmount: 0,
			CreatedAt: mustTime("2024-01-10T10:00:00Z"), UpdatedAt: mustTime("2024-02-10T09:00:00Z"),
		},
		{
			ID: 5, InvoiceNumber: "INV-2024-005", OrderID: 1, OrderNumber: "SO-2024-001",
			BuyerName: "ABC Corporation", BuyerAddress: "555 Business Park, New York, NY 10001, USA",
			IssueDate: "2024-01-05", DueDate: "2024-02-04",
			Status: entity.InvoiceStatusPaid, PaymentStatus: entity.PaymentStatusPaid,
			Items: []entity.InvoiceItem{
				{ID: 1, Description: "Vanilla Beans - Grade A", Quantity: 200, Unit: "kg", UnitPrice: 150.00, TotalPrice: 30000},
				{ID: 2, Description: "Vanilla Beans - Grade B", Quantity: 100, Unit: "kg", UnitPrice: 80.00, TotalPrice: 8000},
			},
			Subtotal: 38000, Tax: 3800, TaxRate: 10, Total: 41800, Currency: "USD",
			Notes: "Full payment received", PaidAmount: 41800, PaidDate: "2024-01-25",
			CreatedAt: mustTime("2024-01-05T10:00:00Z"), UpdatedAt: mustTime("2024-01-25T11:00:00Z"),
		},
		{
			ID: 6, InvoiceNumber: "INV-2024-006", OrderID: 8, OrderNumber: "SO-2024-008",
			BuyerName: "ABC Corporation", BuyerAddress: "555 Business Park, Los Angeles, CA 90001, USA",
			IssueDate: "2024-02-01", DueDate: "2024-03-02",
			Status: entity.InvoiceStatusDraft, PaymentStatus: entity.PaymentStatusUnpaid,
			Items: []entity.InvoiceItem{
				{ID: 1, Description: "Cinnamon Sticks", Quantity: 5000, Unit: "kg", UnitPrice: 4.50, TotalPrice: 22500},
				{ID: 2, Description: "Ground Cinnamon", Quantity: 1000, Unit: "kg", UnitPrice: 6.00, TotalPrice: 6000},
			},
			Subtotal: 28500, Tax: 2850, TaxRate: 10, Total: 31350, Currency: "USD",
			Notes: "Draft invoice - awaiting approval", PaidAmount: 0,
			CreatedAt: mustTime("2024-02-01T10:00:00Z"), UpdatedAt: mustTime("2024-02-01T10:00:00Z"),
		},
	}
}

func seedPayments() []entity.Payment {
	return []entity.Payment{
		{
			ID: 1, PaymentNumber: "PAY-2024-001", InvoiceID: 1, InvoiceNumber: "INV-2024-001",
			OrderID: 2, OrderNumber: "SO-2024-002", BuyerName: "Global Trading Pte Ltd",
			Amount: 19800, PaymentMethod: entity.PaymentMethodBankTransfer,
			PaymentDate: "2024-02-10", ReferenceNumber: "TRF-20240210-001",
			Notes: "Full payment received", CreatedAt: mustTime("2024-02-10T14:00:00Z"),
		},
		{
			ID: 2, PaymentNumber: "PAY-2024-002", InvoiceID: 3, InvoiceNumber: "INV-2024-003",
			OrderID: 4, OrderNumber: "SO-2024-004", BuyerName: "Seoul Distributors Inc",
			Amount: 20000, PaymentMethod: entity.PaymentMethodBankTransfer,
			PaymentDate: "2024-02-05", ReferenceNumber: "TRF-20240205-002",
			Notes: "First installment payment", CreatedAt: mustTime("2024-02-05T14:00:00Z"),
		},
		{
			ID: 3, PaymentNumber: "PAY-2024-003", InvoiceID: 5, InvoiceNumber: "INV-2024-005",
			OrderID: 1, OrderNumber: "SO-2024-001", BuyerName: "ABC Corporation",
			Amount: 41800, PaymentMethod: entity.PaymentMethodBankTransfer,
			PaymentDate: "2024-01-25", ReferenceNumber: "TRF-20240125-003",
			Notes: "Full payment received", CreatedAt: mustTime("2024-01-25T11:00:00Z"),
		},
	}
}
