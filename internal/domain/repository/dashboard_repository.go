package repository

import "github.com/exporthub/exporthub-api/internal/domain/entity"

// DashboardRepository puerto de lectura para los widgets estáticos del tablero.
type DashboardRepository interface {
	KPIs() ([]entity.KPI, error)
	SalesSeries() (*entity.SalesSeries, error)
	TopProducts() ([]entity.TopProduct, error)
	RecentActivities() ([]entity.Activity, error)
}
