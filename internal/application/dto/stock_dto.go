package dto

import "time"

// StockItemResponse existencia por bodega; IsLow marca la condición de alerta.
type StockItemResponse struct {
	ID            int     `json:"id"`
	ProductID     int     `json:"product_id"`
	ProductName   string  `json:"product_name"`
	ProductSKU    string  `json:"product_sku"`
	WarehouseID   int     `json:"warehouse_id"`
	WarehouseName string  `json:"warehouse_name"`
	Quantity      float64 `json:"quantity"`
	MinStock      float64 `json:"min_stock"`
	MaxStock      float64 `json:"max_stock"`
	Unit          string  `json:"unit"`
	BatchNumber   string  `json:"batch_number,omitempty"`
	ExpiredDate   string  `json:"expired_date,omitempty"`
	IsLow         bool    `json:"is_low"`
}

// StockMutationResponse movimiento de inventario con tipo y estado resueltos.
type StockMutationResponse struct {
	ID                int       `json:"id"`
	Type              OptionDTO `json:"type"`
	ReferenceNumber   string    `json:"reference_number"`
	ProductID         int       `json:"product_id"`
	ProductName       string    `json:"product_name"`
	ProductSKU        string    `json:"product_sku"`
	WarehouseFrom     int       `json:"warehouse_from,omitempty"`
	WarehouseTo       int       `json:"warehouse_to,omitempty"`
	WarehouseNameFrom string    `json:"warehouse_name_from,omitempty"`
	WarehouseNameTo   string    `json:"warehouse_name_to,omitempty"`
	Quantity          float64   `json:"quantity"`
	Unit              string    `json:"unit"`
	Status            OptionDTO `json:"status"`
	Notes             string    `json:"notes"`
	CreatedBy         string    `json:"created_by"`
	CreatedAt         time.Time `json:"created_at"`
}

// WarehouseResponse bodega.
type WarehouseResponse struct {
	ID       int    `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Location string `json:"location"`
}
