package memory

import "github.com/exporthub/exporthub-api/internal/domain/entity"

func seedWarehouses() []entity.Warehouse {
	return []entity.Warehouse{
		{ID: 1, Code: "GUD-JKT", Name: "Gudang Jakarta", Location: "Jakarta Utara"},
		{ID: 2, Code: "GUD-SUB", Name: "Gudang Surabaya", Location: "Surabaya"},
		{ID: 3, Code: "GUD-TNG", Name: "Gudang Tangeran", Location: "Tangerang"},
	}
}

func seedProducts() []entity.Product {
	return []entity.Product{
		{
			ID: 1, Name: "Batik Premium Motif Parang", SKU: "BAT-PAR-001",
			Category: "batik", Unit: "PCS",
			Description: "Batik premium quality dengan motif parang klasik Indonesia. Diproduksi dengan teknik batik tulis menggunakan malam alami.",
			HSCode:      "6204.42.00", PriceIDR: 850000, PriceUSD: 55,
			Images: []entity.ProductImage{
				{ID: 1, URL: "https://placehold.co/400x400/0891B2/FFFFFF?text=Batik+Parang", IsPrimary: true},
			},
			Status:    entity.ProductStatusAktif,
			CreatedAt: mustTime("2024-01-15T10:00:00Z"), UpdatedAt: mustTime("2024-01-15T10:00:00Z"),
		},
		{
			ID: 2, Name: "Kopi Luwak Grade A", SKU: "KOP-LUW-001",
			Category: "kopi", Unit: "KG",
			Description: "Kopi luwak premium grade A dari Sumatera. Diproses secara tradisional dengan seleksi buah cherry terbaik.",
			HSCode:      "0901.11.10", PriceIDR: 450000, PriceUSD: 29,
			Images: []entity.ProductImage{
				{ID: 1, URL: "https://placehold.co/400x400/7C3AED/FFFFFF?text=Kopi+Luwak", IsPrimary: true},
			},
			Status:    entity.ProductStatusAktif,
			CreatedAt: mustTime("2024-01-20T10:00:00Z"), UpdatedAt: mustTime("2024-02-10T10:00:00Z"),
		},
		{
			ID: 3, Name: "Palm Oil CPO Grade A", SKU: "PAL-CPO-001",
			Category: "minyak-kelapa", Unit: "TON",
			Description: "Crude Palm Oil (CPO) kualitas ekspor grade A. Standar mutu sesuai spesifikasi internasional.",
			HSCode:      "1511.10.00", PriceIDR: 14500000, PriceUSD: 920,
			Images: []entity.ProductImage{
				{ID: 1, URL: "https://placehold.co/400x400/D97706/FFFFFF?text=Palm+Oil", IsPrimary: true},
			},
			Status:    entity.ProductStatusAktif,
			CreatedAt: mustTime("2024-02-01T10:00:00Z"), UpdatedAt: mustTime("2024-02-01T10:00:00Z"),
		},
		{
			ID: 4, Name: "Rubber Sheet RSS-3", SKU: "RUB-RSS-001",
			Category: "karet", Unit: "KG",
			Description: "Ribbed Smoked Sheet (RSS) grade 3. Karet alam berkualitas tinggi untuk ekspor.",
			HSCode:      "4001.22.00", PriceIDR: 28000, PriceUSD: 1.8,
			Images: []entity.ProductImage{
				{ID: 1, URL: "https://placehold.co/400x400/059669/FFFFFF?text=Rubber+Sheet", IsPrimary: true},
			},
			Status:    entity.ProductStatusAktif,
			CreatedAt: mustTime("2024-02-05T10:00:00Z"), UpdatedAt: mustTime("2024-02-05T10:00:00Z"),
		},
		{
			ID: 5, Name: "Lada Hitam Muntok", SKU: "REM-LAD-001",
			Category: "rempah", Unit: "KG",
			Description: "Lada hitam kualitas ekspor dari Bangka Belitung. Kadar piperin tinggi.",
			HSCode:      "0904.22.10", PriceIDR: 125000, PriceUSD: 8,
			Images: []entity.ProductImage{
				{ID: 1, URL: "https://placehold.co/400x400/DC2626/FFFFFF?text=Lada+Hitam", IsPrimary: true},
			},
			Status:    entity.ProductStatusAktif,
			CreatedAt: mustTime("2024-02-10T10:00:00Z"), UpdatedAt: mustTime("2024-02-10T10:00:00Z"),
		},
		{
			ID: 6, Name: "Batik Mega Mendung", SKU: "BAT-MEG-001",
			Category: "batik", Unit: "PCS",
			Description: "Batik Cirebon motif mega mendung. Kombinasi warna gradasi yang elegan.",
			HSCode:      "6204.42.00", PriceIDR: 1200000, PriceUSD: 76,
			Images: []entity.ProductImage{
				{ID: 1, URL: "https://placehold.co/400x400/0891B2/FFFFFF?text=Batik+Mega", IsPrimary: true},
			},
			Status:    entity.ProductStatusAktif,
			CreatedAt: mustTime("2024-02-15T10:00:00Z"), UpdatedAt: mustTime("2024-02-15T10:00:00Z"),
		},
		{
			ID: 7, Name: "Kopi Robusta Roban", SKU: "KOP-ROB-001",
			Category: "kopi", Unit: "KG",
			Description: "Kopi robusta dari Dataran Tinggi Roban. Rasa kuat dan aroma khas.",
			HSCode:      "0901.11.10", PriceIDR: 85000, PriceUSD: 5.5,
			Images: []entity.ProductImage{
				{ID: 1, URL: "https://placehold.co/400x400/7C3AED/FFFFFF?text=Kopi+Robusta", IsPrimary: true},
			},
			Status:    entity.ProductStatusNonaktif,
			CreatedAt: mustTime("2024-02-20T10:00:00Z"), UpdatedAt: mustTime("2024-03-01T10:00:00Z"),
		},
		{
			ID: 8, Name: "VCO (Virgin Coconut Oil)", SKU: "MIN-VCO-001",
			Category: "minyak-kelapa", Unit: "LITER",
			Description: "Virgin Coconut Oil 100% murni untuk ekspor. Proses cold pressed.",
			HSCode:      "1513.19.00", PriceIDR: 185000, PriceUSD: 12,
			Images: []entity.ProductImage{
				{ID: 1, URL: "https://placehold.co/400x400/D97706/FFFFFF?text=VCO", IsPrimary: true},
			},
			Status:    entity.ProductStatusAktif,
			CreatedAt: mustTime("2024-03-01T10:00:00Z"), UpdatedAt: mustTime("2024-03-01T10:00:00Z"),
		},
		{
			ID: 9, Name: "Tenun Ikat Troso", SKU: "TEK-TEN-001",
			Category: "tekstil", Unit: "PCS",
			Description: "Tenun ikat tradisional dari Jepara dengan motif khas daerah.",
			HSCode:      "5804.21.00", PriceIDR: 2500000, PriceUSD: 158,
			Images: []entity.ProductImage{
				{ID: 1, URL: "https://placehold.co/400x400/059669/FFFFFF?text=Tenun+Ikat", IsPrimary: true},
			},
			Status:    entity.ProductStatusDiscontinue,
			CreatedAt: mustTime("2024-01-10T10:00:00Z"), UpdatedAt: mustTime("2024-03-05T10:00:00Z"),
		},
		{
			ID: 10, Name: "Keris Akik Puyang", SKU: "KER-AKI-001",
			Category: "kerajinan", Unit: "PCS",
			Description: "Keris pusaka koleksi dengan bilah dari bahan baja berkualitas.",
			HSCode:      "9705.00.00", PriceIDR: 15000000, PriceUSD: 950,
			Images: []entity.ProductImage{
				{ID: 1, URL: "https://placehold.co/400x400/DC2626/FFFFFF?text=Keris", IsPrimary: true},
			},
			Status:    entity.ProductStatusAktif,
			CreatedAt: mustTime("2024-03-10T10:00:00Z"), UpdatedAt: mustTime("2024-03-10T10:00:00Z"),
		},
	}
}
