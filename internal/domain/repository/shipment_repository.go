package repository

import "github.com/exporthub/exporthub-api/internal/domain/entity"

// ShipmentRepository puerto de lectura para Shipment.
type ShipmentRepository interface {
	GetByID(id int) (*entity.Shipment, error)
	List() ([]*entity.Shipment, error)
}
