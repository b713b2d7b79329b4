package repository

import "github.com/exporthub/exporthub-api/internal/domain/entity"

// ProductRepository puerto de lectura para Product. Las colecciones son
// snapshots inmutables: no hay operaciones de escritura.
// GetByID devuelve (nil, nil) si el id no existe; la ausencia es dato, no error.
type ProductRepository interface {
	GetByID(id int) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List() ([]*entity.Product, error)
}
