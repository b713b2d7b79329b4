package catalog

// Tablas de referencia del dominio. El orden de las entradas es significativo
// (se muestra tal cual en los selectores del cliente).

// ProductCategories categorías de producto exportable.
var ProductCategories = Table{
	FallbackColor: "secondary",
	Options: []Option{
		{Code: "batik", Label: "Batik"},
		{Code: "kopi", Label: "Kopi"},
		{Code: "minyak-kelapa", Label: "Minyak Kelapa"},
		{Code: "karet", Label: "Karet"},
		{Code: "rempah", Label: "Rempah"},
		{Code: "tekstil", Label: "Tekstil"},
		{Code: "kerajinan", Label: "Kerajinan"},
		{Code: "lainnya", Label: "Lainnya"},
	},
}

// ProductStatuses estados de producto.
var ProductStatuses = Table{
	FallbackColor: "secondary",
	Options: []Option{
		{Code: "aktif", Label: "Aktif", Color: "success"},
		{Code: "nonaktif", Label: "Non-aktif", Color: "secondary"},
		{Code: "discontinue", Label: "Discontinue", Color: "danger"},
	},
}

// Units unidades de medida aceptadas.
var Units = []string{"PCS", "KG", "BOX", "SET", "ROLL", "LITER", "PACK", "UNIT"}

// InvoiceStatuses estados de factura.
var InvoiceStatuses = Table{
	FallbackColor: "gray",
	Options: []Option{
		{Code: "draft", Label: "Draft", Color: "gray"},
		{Code: "sent", Label: "Sent", Color: "blue"},
		{Code: "paid", Label: "Paid", Color: "emerald"},
		{Code: "overdue", Label: "Overdue", Color: "red"},
		{Code: "cancelled", Label: "Cancelled", Color: "slate"},
	},
}

// PaymentStatuses estados de pago de factura.
var PaymentStatuses = Table{
	FallbackColor: "gray",
	Options: []Option{
		{Code: "unpaid", Label: "Unpaid", Color: "red"},
		{Code: "partial", Label: "Partial", Color: "amber"},
		{Code: "paid", Label: "Paid", Color: "emerald"},
	},
}

// PaymentMethods métodos de pago.
var PaymentMethods = Table{
	FallbackColor: "gray",
	Options: []Option{
		{Code: "bank_transfer", Label: "Bank Transfer"},
		{Code: "cash", Label: "Cash"},
		{Code: "credit", Label: "Credit"},
		{Code: "other", Label: "Other"},
	},
}

// UserRoles roles del directorio de usuarios.
var UserRoles = Table{
	FallbackColor: "gray",
	Options: []Option{
		{Code: "admin", Label: "Administrator"},
		{Code: "manager", Label: "Manager"},
		{Code: "staff", Label: "Staff"},
		{Code: "warehouse", Label: "Warehouse"},
	},
}

// UserStatuses estados de usuario.
var UserStatuses = Table{
	FallbackColor: "gray",
	Options: []Option{
		{Code: "active", Label: "Active", Color: "emerald"},
		{Code: "inactive", Label: "Inactive", Color: "gray"},
		{Code: "suspended", Label: "Suspended", Color: "red"},
	},
}

// TransportModes modos de transporte de un envío.
var TransportModes = Table{
	FallbackColor: "gray",
	Options: []Option{
		{Code: "sea", Label: "Sea Freight"},
		{Code: "air", Label: "Air Freight"},
		{Code: "land", Label: "Land Freight"},
	},
}

// ShipmentStatuses estados del ciclo de vida de un envío.
var ShipmentStatuses = Table{
	FallbackColor: "gray",
	Options: []Option{
		{Code: "created", Label: "Created", Color: "gray"},
		{Code: "in_transit", Label: "In Transit", Color: "cyan"},
		{Code: "arrived", Label: "Arrived", Color: "amber"},
		{Code: "customs", Label: "Customs Clearance", Color: "violet"},
		{Code: "delivered", Label: "Delivered", Color: "emerald"},
	},
}

// MutationTypes tipos de mutación de stock.
var MutationTypes = Table{
	FallbackColor: "gray",
	Options: []Option{
		{Code: "penerimaan", Label: "Penerimaan", Color: "emerald"},
		{Code: "pengeluaran", Label: "Pengeluaran", Color: "red"},
		{Code: "transfer", Label: "Transfer", Color: "cyan"},
		{Code: "adjustment", Label: "Adjustment", Color: "amber"},
	},
}

// MutationStatuses estados de mutación de stock.
var MutationStatuses = Table{
	FallbackColor: "gray",
	Options: []Option{
		{Code: "pending", Label: "Pending", Color: "amber"},
		{Code: "completed", Label: "Completed", Color: "emerald"},
		{Code: "cancelled", Label: "Cancelled", Color: "red"},
	},
}
