package entity

import "time"

// Tipos de mutación de stock (códigos heredados en indonesio:
// penerimaan = entrada, pengeluaran = salida).
const (
	MutationTypePenerimaan  = "penerimaan"
	MutationTypePengeluaran = "pengeluaran"
	MutationTypeTransfer    = "transfer"
	MutationTypeAdjustment  = "adjustment"
)

// Estados de mutación de stock.
const (
	MutationStatusPending   = "pending"
	MutationStatusCompleted = "completed"
	MutationStatusCancelled = "cancelled"
)

// StockItem existencia de un producto en una bodega. Referencias al producto
// desnormalizadas (nombre y SKU) como en el sistema de origen.
// Condición de alerta: Quantity ≤ MinStock. Se asume MinStock ≤ MaxStock.
type StockItem struct {
	ID            int
	ProductID     int
	ProductName   string
	ProductSKU    string
	WarehouseID   int
	WarehouseName string
	Quantity      float64
	MinStock      float64
	MaxStock      float64
	Unit          string
	BatchNumber   string // vacío si no aplica
	ExpiredDate   string // YYYY-MM-DD, vacío si no aplica
}

// IsLow indica si el item está en condición de alerta de stock bajo.
func (s *StockItem) IsLow() bool {
	return s.Quantity <= s.MinStock
}

// StockMutation movimiento registrado de inventario. Las bodegas origen/destino
// dependen del tipo: transfer lleva ambas, penerimaan solo destino,
// pengeluaran solo origen; adjustment puede llevar cualquiera con cantidad
// con signo.
type StockMutation struct {
	ID                int
	Type              string // penerimaan, pengeluaran, transfer, adjustment
	ReferenceNumber   string
	ProductID         int
	ProductName       string
	ProductSKU        string
	WarehouseFrom     int // 0 = sin bodega origen
	WarehouseTo       int // 0 = sin bodega destino
	WarehouseNameFrom string
	WarehouseNameTo   string
	Quantity          float64 // con signo para adjustment
	Unit              string
	Status            string // pending, completed, cancelled
	Notes             string
	CreatedBy         string
	CreatedAt         time.Time
}
