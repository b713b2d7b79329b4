package usecase

import (
	"github.com/exporthub/exporthub-api/internal/application/dto"
	"github.com/exporthub/exporthub-api/internal/domain/catalog"
	"github.com/exporthub/exporthub-api/internal/domain/entity"
	"github.com/exporthub/exporthub-api/internal/domain/repository"
)

// StockUseCase consultas de existencias, mutaciones y bodegas.
type StockUseCase struct {
	stock      repository.StockRepository
	warehouses repository.WarehouseRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stock repository.StockRepository, warehouses repository.WarehouseRepository) *StockUseCase {
	return &StockUseCase{stock: stock, warehouses: warehouses}
}

// Items lista existencias en el orden del snapshot.
func (uc *StockUseCase) Items() ([]dto.StockItemResponse, error) {
	list, err := uc.stock.ListItems()
	if err != nil {
		return nil, err
	}
	return toStockItemResponses(list), nil
}

// ItemByID obtiene una existencia por id; (nil, nil) si no existe.
func (uc *StockUseCase) ItemByID(id int) (*dto.StockItemResponse, error) {
	it, err := uc.stock.GetItemByID(id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, nil
	}
	r := toStockItemResponse(it)
	return &r, nil
}

// ItemsByWarehouse lista existencias de una bodega, orden del snapshot.
func (uc *StockUseCase) ItemsByWarehouse(warehouseID int) ([]dto.StockItemResponse, error) {
	list, err := uc.stock.ListItemsByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	return toStockItemResponses(list), nil
}

// Alerts lista las existencias en condición de alerta de stock bajo.
func (uc *StockUseCase) Alerts() ([]dto.StockItemResponse, error) {
	list, err := uc.stock.ListItems()
	if err != nil {
		return nil, err
	}
	var low []*entity.StockItem
	for _, it := range list {
		if it.IsLow() {
			low = append(low, it)
		}
	}
	return toStockItemResponses(low), nil
}

// Mutations lista los movimientos de inventario con tipo y estado resueltos.
func (uc *StockUseCase) Mutations() ([]dto.StockMutationResponse, error) {
	list, err := uc.stock.ListMutations()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMutationResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMutationResponse(m))
	}
	return items, nil
}

// Warehouses lista las bodegas.
func (uc *StockUseCase) Warehouses() ([]dto.WarehouseResponse, error) {
	list, err := uc.warehouses.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, dto.WarehouseResponse{ID: w.ID, Code: w.Code, Name: w.Name, Location: w.Location})
	}
	return items, nil
}

// WarehouseByID obtiene una bodega; (nil, nil) si no existe.
func (uc *StockUseCase) WarehouseByID(id int) (*dto.WarehouseResponse, error) {
	w, err := uc.warehouses.GetByID(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}
	return &dto.WarehouseResponse{ID: w.ID, Code: w.Code, Name: w.Name, Location: w.Location}, nil
}

func toStockItemResponse(it *entity.StockItem) dto.StockItemResponse {
	return dto.StockItemResponse{
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
		IsLow:         it.IsLow(),
	}
}

func toStockItemResponses(list []*entity.StockItem) []dto.StockItemResponse {
	items := make([]dto.StockItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, toStockItemResponse(it))
	}
	return items
}

func toMutationResponse(m *entity.StockMutation) dto.StockMutationResponse {
	return dto.StockMutationResponse{
		ID:                m.ID,
		Type:              toOption(catalog.MutationTypes.Resolve(m.Type)),
		ReferenceNumber:   m.ReferenceNumber,
		ProductID:         m.ProductID,
		ProductName:       m.ProductName,
		ProductSKU:        m.ProductSKU,
		WarehouseFrom:     m.WarehouseFrom,
		WarehouseTo:       m.WarehouseTo,
		WarehouseNameFrom: m.WarehouseNameFrom,
		WarehouseNameTo:   m.WarehouseNameTo,
		Quantity:          m.Quantity,
		Unit:              m.Unit,
		Status:            toOption(catalog.MutationStatuses.Resolve(m.Status)),
		Notes:             m.Notes,
		CreatedBy:         m.CreatedBy,
		CreatedAt:         m.CreatedAt,
	}
}
