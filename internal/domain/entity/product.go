package entity

import "time"

// Estados válidos para Product (códigos heredados del catálogo en indonesio).
const (
	ProductStatusAktif       = "aktif"
	ProductStatusNonaktif    = "nonaktif"
	ProductStatusDiscontinue = "discontinue"
)

// ProductImage imagen asociada a un producto; a lo sumo una marcada como primaria.
type ProductImage struct {
	ID        int
	URL       string
	IsPrimary bool
}

// Product representa un producto exportable del catálogo.
// SKU es único dentro de la colección; HSCode es la partida arancelaria
// (Harmonized System) que exige la aduana. Precios en doble denominación.
type Product struct {
	ID          int
	Name        string
	SKU         string
	Category    string // código del catálogo de categorías (batik, kopi, ...)
	Unit        string // PCS, KG, TON, LITER, ...
	Description string
	HSCode      string
	PriceIDR    float64
	PriceUSD    float64
	Images      []ProductImage
	Status      string // aktif, nonaktif, discontinue
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PrimaryImage devuelve la imagen marcada como primaria, o la primera si
// ninguna lo está. Nil si el producto no tiene imágenes.
func (p *Product) PrimaryImage() *ProductImage {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}
