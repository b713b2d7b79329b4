package usecase

import (
	"github.com/exporthub/exporthub-api/internal/application/dto"
	"github.com/exporthub/exporthub-api/internal/domain/catalog"
	"github.com/exporthub/exporthub-api/internal/domain/entity"
	"github.com/exporthub/exporthub-api/internal/domain/repository"
)

// ProductUseCase consultas del catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// GetByID obtiene un producto por id; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// List lista los productos en el orden del snapshot.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Catalogs devuelve las tablas de referencia del módulo.
func (uc *ProductUseCase) Catalogs() dto.ProductCatalogResponse {
	return dto.ProductCatalogResponse{
		Categories: toOptions(catalog.ProductCategories),
		Statuses:   toOptions(catalog.ProductStatuses),
		Units:      append([]string(nil), catalog.Units...),
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	images := make([]dto.ProductImageDTO, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, dto.ProductImageDTO{ID: img.ID, URL: img.URL, IsPrimary: img.IsPrimary})
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Category:      p.Category,
		CategoryLabel: catalog.ProductCategories.Label(p.Category),
		Unit:          p.Unit,
		Description:   p.Description,
		HSCode:        p.HSCode,
		PriceIDR:      p.PriceIDR,
		PriceUSD:      p.PriceUSD,
		Images:        images,
		Status:        toOption(catalog.ProductStatuses.Resolve(p.Status)),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toOption(o catalog.Option) dto.OptionDTO {
	return dto.OptionDTO{Code: o.Code, Label: o.Label, Color: o.Color}
}

func toOptions(t catalog.Table) []dto.OptionDTO {
	out := make([]dto.OptionDTO, 0, len(t.Options))
	for _, o := range t.Options {
		out = append(out, toOption(o))
	}
	return out
}
