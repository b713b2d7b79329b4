package dto

// KPIDTO tarjeta de indicador del tablero.
type KPIDTO struct {
	Title  string  `json:"title"`
	Value  string  `json:"value"`
	Change float64 `json:"change"`
	Icon   string  `json:"icon"`
	Color  string  `json:"color"`
}

// SalesSeriesDTO serie mensual de revenue y órdenes.
type SalesSeriesDTO struct {
	Labels  []string  `json:"labels"`
	Revenue []float64 `json:"revenue"`
	Orders  []int     `json:"orders,omitempty"`
}

// TopProductDTO entrada del ranking de productos.
type TopProductDTO struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ActivityDTO evento reciente del feed.
type ActivityDTO struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

// DashboardSummaryDTO resumen del tablero: widgets estáticos más los
// agregados vivos calculados sobre el snapshot.
type DashboardSummaryDTO struct {
	KPIs             []KPIDTO            `json:"kpis"`
	Sales            SalesSeriesDTO      `json:"sales"`
	TopProducts      []TopProductDTO     `json:"top_products"`
	RecentActivities []ActivityDTO       `json:"recent_activities"`
	TotalReceivable  float64             `json:"total_receivable"`
	TotalPaid        float64             `json:"total_paid"`
	TotalStockValue  float64             `json:"total_stock_value"`
	StockAlerts      []StockItemResponse `json:"stock_alerts"`
	ActiveUsers      int                 `json:"active_users"`
	Admins           int                 `json:"admins"`
}
