// Package analytics contiene el caso de uso de agregados del tablero: cartera
// por cobrar, cobros acumulados, alertas de stock y conteos del directorio.
// Toda la aritmética monetaria es float64: los totales deben reproducir
// exactamente los del sistema de origen (doble IEEE-754).
package analytics

import (
	"github.com/exporthub/exporthub-api/internal/application/dto"
	"github.com/exporthub/exporthub-api/internal/domain/entity"
	"github.com/exporthub/exporthub-api/internal/domain/repository"
)

// DashboardUseCase agregados de solo lectura sobre el snapshot.
type DashboardUseCase struct {
	invoices  repository.InvoiceRepository
	stock     repository.StockRepository
	users     repository.UserRepository
	dashboard repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	invoices repository.InvoiceRepository,
	stock repository.StockRepository,
	users repository.UserRepository,
	dashboard repository.DashboardRepository,
) *DashboardUseCase {
	return &DashboardUseCase{invoices: invoices, stock: stock, users: users, dashboard: dashboard}
}

// TotalReceivable suma (Total − PaidAmount) de las facturas cuyo estado de
// pago no es 'paid'. Cero cuando todo está cobrado.
func (uc *DashboardUseCase) TotalReceivable() (float64, error) {
	list, err := uc.invoices.List()
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, inv := range list {
		if inv.PaymentStatus != entity.PaymentStatusPaid {
			sum += inv.Total - inv.PaidAmount
		}
	}
	return sum, nil
}

// TotalPaid suma PaidAmount de todas las facturas, sin importar su estado.
func (uc *DashboardUseCase) TotalPaid() (float64, error) {
	list, err := uc.invoices.List()
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, inv := range list {
		sum += inv.PaidAmount
	}
	return sum, nil
}

// StockAlerts filtra las existencias en condición de alerta
// (Quantity ≤ MinStock) preservando el orden del snapshot.
func (uc *DashboardUseCase) StockAlerts() ([]*entity.StockItem, error) {
	list, err := uc.stock.ListItems()
	if err != nil {
		return nil, err
	}
	var out []*entity.StockItem
	for _, it := range list {
		if it.IsLow() {
			out = append(out, it)
		}
	}
	return out, nil
}

// StockByWarehouse filtra existencias por bodega preservando el orden.
func (uc *DashboardUseCase) StockByWarehouse(warehouseID int) ([]*entity.StockItem, error) {
	return uc.stock.ListItemsByWarehouse(warehouseID)
}

// TotalStockValue suma las cantidades de todas las existencias. Nombre
// heredado del sistema de origen: suma cantidades entre unidades
// heterogéneas, no un valor monetario.
func (uc *DashboardUseCase) TotalStockValue() (float64, error) {
	list, err := uc.stock.ListItems()
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, it := range list {
		sum += it.Quantity
	}
	return sum, nil
}

// ActiveUserCount cuenta usuarios con estado 'active'.
func (uc *DashboardUseCase) ActiveUserCount() (int, error) {
	list, err := uc.users.List()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, u := range list {
		if u.Status == entity.UserStatusActive {
			n++
		}
	}
	return n, nil
}

// AdminCount cuenta usuarios con rol 'admin'.
func (uc *DashboardUseCase) AdminCount() (int, error) {
	list, err := uc.users.List()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, u := range list {
		if u.Role == entity.RoleAdmin {
			n++
		}
	}
	return n, nil
}

// Summary arma el resumen completo del tablero: widgets estáticos del
// snapshot más los agregados vivos.
func (uc *DashboardUseCase) Summary() (*dto.DashboardSummaryDTO, error) {
	kpis, err := uc.dashboard.KPIs()
	if err != nil {
		return nil, err
	}
	sales, err := uc.dashboard.SalesSeries()
	if err != nil {
		return nil, err
	}
	top, err := uc.dashboard.TopProducts()
	if err != nil {
		return nil, err
	}
	activities, err := uc.dashboard.RecentActivities()
	if err != nil {
		return nil, err
	}
	receivable, err := uc.TotalReceivable()
	if err != nil {
		return nil, err
	}
	paid, err := uc.TotalPaid()
	if err != nil {
		return nil, err
	}
	stockTotal, err := uc.TotalStockValue()
	if err != nil {
		return nil, err
	}
	alerts, err := uc.StockAlerts()
	if err != nil {
		return nil, err
	}
	active, err := uc.ActiveUserCount()
	if err != nil {
		return nil, err
	}
	admins, err := uc.AdminCount()
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardSummaryDTO{
		TotalReceivable: receivable,
		TotalPaid:       paid,
		TotalStockValue: stockTotal,
		ActiveUsers:     active,
		Admins:          admins,
	}
	for _, k := range kpis {
		out.KPIs = append(out.KPIs, dto.KPIDTO{
			Title: k.Title, Value: k.Value, Change: k.Change, Icon: k.Icon, Color: k.Color,
		})
	}
	out.Sales = dto.SalesSeriesDTO{Labels: sales.Labels, Revenue: sales.Revenue, Orders: sales.Orders}
	for _, p := range top {
		out.TopProducts = append(out.TopProducts, dto.TopProductDTO{Name: p.Name, Value: p.Value})
	}
	for _, a := range activities {
		out.RecentActivities = append(out.RecentActivities, dto.ActivityDTO{
			ID: a.ID, Type: a.Type, Title: a.Title, Description: a.Description, Time: a.Time,
		})
	}
	for _, it := range alerts {
		out.StockAlerts = append(out.StockAlerts, dto.StockItemResponse{
			ID:            it.ID,
			ProductID:     it.ProductID,
			ProductName:   it.ProductName,
			ProductSKU:    it.ProductSKU,
			WarehouseID:   it.WarehouseID,
			WarehouseName: it.WarehouseName,
			Quantity:      it.Quantity,
			MinStock:      it.MinStock,
			MaxStock:      it.MaxStock,
			Unit:          it.Unit,
			BatchNumber:   it.BatchNumber,
			ExpiredDate:   it.ExpiredDate,
			IsLow:         true,
		})
	}
	return out, nil
}
