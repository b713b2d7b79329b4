package repository

import "github.com/exporthub/exporthub-api/internal/domain/entity"

// StockRepository puerto de lectura para existencias y mutaciones. Todos los
// listados preservan el orden original del snapshot.
type StockRepository interface {
	GetItemByID(id int) (*entity.StockItem, error)
	ListItems() ([]*entity.StockItem, error)
	ListItemsByWarehouse(warehouseID int) ([]*entity.StockItem, error)
	ListMutations() ([]*entity.StockMutation, error)
}

// WarehouseRepository puerto de lectura para Warehouse.
type WarehouseRepository interface {
	GetByID(id int) (*entity.Warehouse, error)
	List() ([]*entity.Warehouse, error)
}
