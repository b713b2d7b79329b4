package dto

import "time"

// ProductImageDTO imagen de producto.
type ProductImageDTO struct {
	ID        int    `json:"id"`
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
}

// ProductResponse producto con sus códigos de catálogo ya resueltos a
// etiquetas de presentación.
type ProductResponse struct {
	ID            int               `json:"id"`
	Name          string            `json:"name"`
	SKU           string            `json:"sku"`
	Category      string            `json:"category"`
	CategoryLabel string            `json:"category_label"`
	Unit          string            `json:"unit"`
	Description   string            `json:"description"`
	HSCode        string            `json:"hs_code"`
	PriceIDR      float64           `json:"price_idr"`
	PriceUSD      float64           `json:"price_usd"`
	Images        []ProductImageDTO `json:"images"`
	Status        OptionDTO         `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ProductCatalogResponse tablas de referencia del módulo de productos.
type ProductCatalogResponse struct {
	Categories []OptionDTO `json:"categories"`
	Statuses   []OptionDTO `json:"statuses"`
	Units      []string    `json:"units"`
}
