package entity

import "time"

// Modos de transporte.
const (
	TransportModeSea  = "sea"
	TransportModeAir  = "air"
	TransportModeLand = "land"
)

// Estados de envío; ciclo de vida lineal:
// created → in_transit → arrived → customs → delivered.
const (
	ShipmentStatusCreated   = "created"
	ShipmentStatusInTransit = "in_transit"
	ShipmentStatusArrived   = "arrived"
	ShipmentStatusCustoms   = "customs"
	ShipmentStatusDelivered = "delivered"
)

// ShipmentDocument adjunto tipado de un envío (bl, awb, peb, coo, invoice, ...).
type ShipmentDocument struct {
	ID         int
	Type       string
	Name       string
	URL        string
	UploadedAt time.Time
}

// Shipment representa un envío de exportación. Los campos de transportista
// dependen del modo: sea usa Voyage/Container/BL; air usa Flight/AWB.
type Shipment struct {
	ID                 int
	ShipmentNumber     string // único en la colección
	OrderID            int
	OrderNumber        string
	BuyerName          string
	DestinationCountry string
	DestinationPort    string
	TransportMode      string // sea, air, land
	CarrierName        string
	VoyageNumber       string
	ContainerNumber    string
	BLNumber           string
	FlightNumber       string
	AWBNumber          string
	ETD                string // YYYY-MM-DD
	ETA                string
	Status             string
	Documents          []ShipmentDocument
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
