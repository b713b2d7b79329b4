package entity

// Widgets estáticos del tablero. Son fixtures de presentación (tarjetas KPI,
// serie de ventas, actividades recientes); los agregados vivos se calculan en
// la capa de analítica.

// KPI tarjeta de indicador del tablero.
type KPI struct {
	Title  string
	Value  string
	Change float64 // variación porcentual vs. período anterior
	Icon   string
	Color  string // cyan, violet, amber, emerald
}

// SalesSeries serie mensual de revenue y órdenes para el gráfico de ventas.
type SalesSeries struct {
	Labels  []string
	Revenue []float64
	Orders  []int
}

// TopProduct entrada del ranking de productos más vendidos.
type TopProduct struct {
	Name  string
	Value float64
}

// Activity evento reciente mostrado en el feed del tablero.
type Activity struct {
	ID          int
	Type        string // order, shipment, stock, payment, alert
	Title       string
	Description string
	Time        string
}
