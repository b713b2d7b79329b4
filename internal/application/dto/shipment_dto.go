package dto

import "time"

// ShipmentDocumentDTO adjunto tipado de un envío.
type ShipmentDocumentDTO struct {
	ID         int       `json:"id"`
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ShipmentResponse envío con modo y estado resueltos a etiquetas.
type ShipmentResponse struct {
	ID                 int                   `json:"id"`
	ShipmentNumber     string                `json:"shipment_number"`
	OrderID            int                   `json:"order_id"`
	OrderNumber        string                `json:"order_number"`
	BuyerName          string                `json:"buyer_name"`
	DestinationCountry string                `json:"destination_country"`
	DestinationPort    string                `json:"destination_port"`
	TransportMode      string                `json:"transport_mode"`
	TransportModeLabel string                `json:"transport_mode_label"`
	CarrierName        string                `json:"carrier_name"`
	VoyageNumber       string                `json:"voyage_number,omitempty"`
	ContainerNumber    string                `json:"container_number,omitempty"`
	BLNumber           string                `json:"bl_number,omitempty"`
	FlightNumber       string                `json:"flight_number,omitempty"`
	AWBNumber          string                `json:"awb_number,omitempty"`
	ETD                string                `json:"etd"`
	ETA                string                `json:"eta"`
	Status             OptionDTO             `json:"status"`
	Documents          []ShipmentDocumentDTO `json:"documents"`
	Notes              string                `json:"notes"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}
