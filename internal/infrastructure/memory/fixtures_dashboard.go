package memory

import "github.com/exporthub/exporthub-api/internal/domain/entity"

func seedKPIs() []entity.KPI {
	return []entity.KPI{
		{Title: "Total Stok", Value: "24,850", Change: 12.5, Icon: "package", Color: "cyan"},
		{Title: "Nilai Inventori", Value: "$2.4M", Change: 8.2, Icon: "dollar", Color: "violet"},
		{Title: "Order Aktif", Value: "156", Change: -3.1, Icon: "cart", Color: "amber"},
		{Title: "Revenue Bulan Ini", Value: "$485K", Change: 24.8, Icon: "trending", Color: "emerald"},
	}
}

func seedSalesSeries() entity.SalesSeries {
	return entity.SalesSeries{
		Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		Revenue: []float64{
			180000, 220000, 195000, 280000, 320000, 290000,
			350000, 380000, 420000, 390000, 450000, 485000,
		},
		Orders: []int{45, 52, 48, 65, 72, 68, 82, 88, 95, 90, 105, 112},
	}
}

func seedTopProducts() []entity.TopProduct {
	return []entity.TopProduct{
		{Name: "Batik Premium", Value: 4250},
		{Name: "Kopi Luwak", Value: 3180},
		{Name: "Palm Oil", Value: 2850},
		{Name: "Rubber Sheet", Value: 2120},
		{Name: "Coffee Beans", Value: 1890},
	}
}

func seedActivities() []entity.Activity {
	return []entity.Activity{
		{ID: 1, Type: "order", Title: "Order Baru", Description: "Order #SO-2024-089 dari PT Maju Jaya", Time: "5 menit lalu"},
		{ID: 2, Type: "shipment", Title: "Pengiriman", Description: "Container CV-KE-8847 tiba di tujuan (Singapore)", Time: "1 jam lalu"},
		{ID: 3, Type: "payment", Title: "Pembayaran", Description: "Invoice #INV-2024-156 lunas dari Buyer ABC Corp", Time: "2 jam lalu"},
		{ID: 4, Type: "stock", Title: "Penerimaan Stok", Description: "Penerimaan GR-2024-023 dari Gudang Jakarta", Time: "3 jam lalu"},
		{ID: 5, Type: "alert", Title: "Stok Menipis", Description: "SKU-BATIK-001 stok di bawah minimum (15 unit)", Time: "4 jam lalu"},
	}
}
