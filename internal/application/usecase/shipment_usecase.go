package usecase

import (
	"github.com/exporthub/exporthub-api/internal/application/dto"
	"github.com/exporthub/exporthub-api/internal/domain/catalog"
	"github.com/exporthub/exporthub-api/internal/domain/entity"
	"github.com/exporthub/exporthub-api/internal/domain/repository"
)

// ShipmentUseCase consultas de envíos.
type ShipmentUseCase struct {
	repo repository.ShipmentRepository
}

// NewShipmentUseCase construye el caso de uso.
func NewShipmentUseCase(repo repository.ShipmentRepository) *ShipmentUseCase {
	return &ShipmentUseCase{repo: repo}
}

// GetByID obtiene un envío por id; (nil, nil) si no existe.
func (uc *ShipmentUseCase) GetByID(id int) (*dto.ShipmentResponse, error) {
	sh, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, nil
	}
	return toShipmentResponse(sh), nil
}

// List lista los envíos en el orden del snapshot.
func (uc *ShipmentUseCase) List() ([]dto.ShipmentResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShipmentResponse, 0, len(list))
	for _, sh := range list {
		items = append(items, *toShipmentResponse(sh))
	}
	return items, nil
}

func toShipmentResponse(sh *entity.Shipment) *dto.ShipmentResponse {
	docs := make([]dto.ShipmentDocumentDTO, 0, len(sh.Documents))
	for _, d := range sh.Documents {
		docs = append(docs, dto.ShipmentDocumentDTO{
			ID: d.ID, Type: d.Type, Name: d.Name, URL: d.URL, UploadedAt: d.UploadedAt,
		})
	}
	return &dto.ShipmentResponse{
		ID:                 sh.ID,
		ShipmentNumber:     sh.ShipmentNumber,
		OrderID:            sh.OrderID,
		OrderNumber:        sh.OrderNumber,
		BuyerName:          sh.BuyerName,
		DestinationCountry: sh.DestinationCountry,
		DestinationPort:    sh.DestinationPort,
		TransportMode:      sh.TransportMode,
		TransportModeLabel: catalog.TransportModes.Label(sh.TransportMode),
		CarrierName:        sh.CarrierName,
		VoyageNumber:       sh.VoyageNumber,
		ContainerNumber:    sh.ContainerNumber,
		BLNumber:           sh.BLNumber,
		FlightNumber:       sh.FlightNumber,
		AWBNumber:          sh.AWBNumber,
		ETD:                sh.ETD,
		ETA:                sh.ETA,
		Status:             toOption(catalog.ShipmentStatuses.Resolve(sh.Status)),
		Documents:          docs,
		Notes:              sh.Notes,
		CreatedAt:          sh.CreatedAt,
		UpdatedAt:          sh.UpdatedAt,
	}
}
