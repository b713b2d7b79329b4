package memory

import "github.com/exporthub/exporthub-api/internal/domain/entity"

func seedStockItems() []entity.StockItem {
	return []entity.StockItem{
		{
			ID: 1, ProductID: 1, ProductName: "Batik Premium Motif Parang", ProductSKU: "BAT-PAR-001",
			WarehouseID: 1, WarehouseName: "Gudang Jakarta",
			Quantity: 150, MinStock: 50, MaxStock: 500, Unit: "PCS",
			BatchNumber: "BATCH-2024-001", ExpiredDate: "2025-12-31",
		},
		{
			ID: 2, ProductID: 2, ProductName: "Kopi Luwak Grade A", ProductSKU: "KOP-LUW-001",
			WarehouseID: 1, WarehouseName: "Gudang Jakarta",
			Quantity: 85, MinStock: 100, MaxStock: 500, Unit: "KG",
		},
		{
			ID: 3, ProductID: 3, ProductName: "Palm Oil CPO Grade A", ProductSKU: "PAL-CPO-001",
			WarehouseID: 2, WarehouseName: "Gudang Surabaya",
			Quantity: 250, MinStock: 100, MaxStock: 1000, Unit: "TON",
		},
		{
			ID: 4, ProductID: 4, ProductName: "Rubber Sheet RSS-3", ProductSKU: "RUB-RSS-001",
			WarehouseID: 2, WarehouseName: "Gudang Surabaya",
			Quantity: 320, MinStock: 150, MaxStock: 1000, Unit: "KG",
		},
		{
			ID: 5, ProductID: 5, ProductName: "Lada Hitam Muntok", ProductSKU: "REM-LAD-001",
			WarehouseID: 3, WarehouseName: "Gudang Tangeran",
			Quantity: 45, MinStock: 50, MaxStock: 300, Unit: "KG",
		},
		{
			ID: 6, ProductID: 6, ProductName: "Batik Mega Mendung", ProductSKU: "BAT-MEG-001",
			WarehouseID: 1, WarehouseName: "Gudang Jakarta",
			Quantity: 28, MinStock: 30, MaxStock: 200, Unit: "PCS",
			BatchNumber: "BATCH-2024-002",
		},
		{
			ID: 7, ProductID: 8, ProductName: "VCO (Virgin Coconut Oil)", ProductSKU: "MIN-VCO-001",
			WarehouseID: 3, WarehouseName: "Gudang Tangeran",
			Quantity: 120, MinStock: 50, MaxStock: 300, Unit: "LITER",
		},
		{
			ID: 8, ProductID: 10, ProductName: "Keris Akik Puyang", ProductSKU: "KER-AKI-001",
			WarehouseID: 1, WarehouseName: "Gudang Jakarta",
			Quantity: 5, MinStock: 2, MaxStock: 20, Unit: "PCS",
		},
	}
}

func seedStockMutations() []entity.StockMutation {
	return []entity.StockMutation{
		{
			ID: 1, Type: entity.MutationTypePenerimaan, ReferenceNumber: "GR-2024-001",
			ProductID: 1, ProductName: "Batik Premium Motif Parang", ProductSKU: "BAT-PAR-001",
			WarehouseTo: 1, WarehouseNameTo: "Gudang Jakarta",
			Quantity: 200, Unit: "PCS", Status: entity.MutationStatusCompleted,
			Notes: "Penerimaan dari supplier lokal", CreatedBy: "Admin Gudang",
			CreatedAt: mustTime("2024-01-15T10:00:00Z"),
		},
		{
			ID: 2, Type: entity.MutationTypePengeluaran, ReferenceNumber: "GI-2024-001",
			ProductID: 1, ProductName: "Batik Premium Motif Parang", ProductSKU: "BAT-PAR-001",
			WarehouseFrom: 1, WarehouseNameFrom: "Gudang Jakarta",
			Quantity: 50, Unit: "PCS", Status: entity.MutationStatusCompleted,
			Notes: "Pengiriman ke buyer ABC Corp", CreatedBy: "Admin Gudang",
			CreatedAt: mustTime("2024-01-20T14:30:00Z"),
		},
		{
			ID: 3, Type: entity.MutationTypeTransfer, ReferenceNumber: "TF-2024-001",
			ProductID: 3, ProductName: "Palm Oil CPO Grade A", ProductSKU: "PAL-CPO-001",
			WarehouseFrom: 2, WarehouseNameFrom: "Gudang Surabaya",
			WarehouseTo: 1, WarehouseNameTo: "Gudang Jakarta",
			Quantity: 100, Unit: "TON", Status: entity.MutationStatusCompleted,
			Notes: "Transfer antar gudang untuk memenuhi order", CreatedBy: "Manager Gudang",
			CreatedAt: mustTime("2024-01-25T09:00:00Z"),
		},
		{
			ID: 4, Type: entity.MutationTypePenerimaan, ReferenceNumber: "GR-2024-002",
			ProductID: 2, ProductName: "Kopi Luwak Grade A", ProductSKU: "KOP-LUW-001",
			WarehouseTo: 1, WarehouseNameTo: "Gudang Jakarta",
			Quantity: 150, Unit: "KG", Status: entity.MutationStatusCompleted,
			Notes: "Penerimaan batch baru", CreatedBy: "Admin Gudang",
			CreatedAt: mustTime("2024-02-01T11:00:00Z"),
		},
		{
			ID: 5, Type: entity.MutationTypeAdjustment, ReferenceNumber: "ADJ-2024-001",
			ProductID: 6, ProductName: "Batik Mega Mendung", ProductSKU: "BAT-MEG-001",
			WarehouseFrom: 1, WarehouseNameFrom: "Gudang Jakarta",
			Quantity: -2, Unit: "PCS", Status: entity.MutationStatusCompleted,
			Notes: "Adjustments due to damaged items", CreatedBy: "Admin Gudang",
			CreatedAt: mustTime("2024-02-10T16:00:00Z"),
		},
		{
			ID: 6, Type: entity.MutationTypePengeluaran, ReferenceNumber: "GI-2024-002",
			ProductID: 5, ProductName: "Lada Hitam Muntok", ProductSKU: "REM-LAD-001",
			WarehouseFrom: 3, WarehouseNameFrom: "Gudang Tangeran",
			Quantity: 30, Unit: "KG", Status: entity.MutationStatusPending,
			Notes: "Menunggu approval", CreatedBy: "Admin Gudang",
			CreatedAt: mustTime("2024-02-15T10:00:00Z"),
		},
	}
}
