package memory

import "github.com/exporthub/exporthub-api/internal/domain/entity"

func seedShipments() []entity.Shipment {
	return []entity.Shipment{
		{
			ID: 1, ShipmentNumber: "SHP-2024-001", OrderID: 2, OrderNumber: "SO-2024-002",
			BuyerName: "Global Trading Pte Ltd", DestinationCountry: "Singapore",
			DestinationPort: "Port of Singapore", TransportMode: entity.TransportModeSea,
			CarrierName: "Maersk Line", VoyageNumber: "MAERSK-8847",
			ContainerNumber: "MSKU-123456-7", BLNumber: "BL-SIN-2024-001",
			ETD: "2024-02-15", ETA: "2024-02-22", Status: entity.ShipmentStatusDelivered,
			Documents: []entity.ShipmentDocument{
				{ID: 1, Type: "bl", Name: "Bill of Lading", URL: "#", UploadedAt: mustTime("2024-02-14T10:00:00Z")},
				{ID: 2, Type: "peb", Name: "PEB Export", URL: "#", UploadedAt: mustTime("2024-02-14T10:00:00Z")},
			},
			Notes:     "Container arrived safely",
			CreatedAt: mustTime("2024-02-10T10:00:00Z"), UpdatedAt: mustTime("2024-02-22T14:00:00Z"),
		},
		{
			ID: 2, ShipmentNumber: "SHP-2024-002", OrderID: 3, OrderNumber: "SO-2024-003",
			BuyerName: "Tokyo Imports Co", DestinationCountry: "Japan",
			DestinationPort: "Port of Tokyo", TransportMode: entity.TransportModeSea,
			CarrierName: "NYK Line", VoyageNumber: "NYK-2024-0156",
			ContainerNumber: "NYKU-789012-3", BLNumber: "BL-TKY-2024-002",
			ETD: "2024-02-18", ETA: "2024-02-25", Status: entity.ShipmentStatusInTransit,
			Documents: []entity.ShipmentDocument{
				{ID: 1, Type: "bl", Name: "Bill of Lading", URL: "#", UploadedAt: mustTime("2024-02-17T10:00:00Z")},
			},
			Notes:     "In transit to Tokyo",
			CreatedAt: mustTime("2024-02-15T10:00:00Z"), UpdatedAt: mustTime("2024-02-19T08:00:00Z"),
		},
		{
			ID: 3, ShipmentNumber: "SHP-2024-003", OrderID: 4, OrderNumber: "SO-2024-004",
			BuyerName: "Seoul Distributors Inc", DestinationCountry: "South Korea",
			DestinationPort: "Port of Busan", TransportMode: entity.TransportModeSea,
			CarrierName: "Evergreen Marine", VoyageNumber: "EGL-2024-0089",
			ContainerNumber: "EGLV-234567-8",
			ETD:             "2024-02-20", ETA: "2024-02-27", Status: entity.ShipmentStatusCreated,
			Documents: []entity.ShipmentDocument{},
			Notes:     "Awaiting container loading",
			CreatedAt: mustTime("2024-02-18T10:00:00Z"), UpdatedAt: mustTime("2024-02-18T10:00:00Z"),
		},
		{
			ID: 4, ShipmentNumber: "SHP-2024-004", OrderID: 6, OrderNumber: "SO-2024-006",
			BuyerName: "Sydney Merchants Pty", DestinationCountry: "Australia",
			DestinationPort: "Port of Sydney", TransportMode: entity.TransportModeAir,
			CarrierName: "Qantas Freight", FlightNumber: "QF-2024-156", AWBNumber: "AWB-SYD-2024-004",
			ETD: "2024-01-28", ETA: "2024-01-30", Status: entity.ShipmentStatusDelivered,
			Documents: []entity.ShipmentDocument{
				{ID: 1, Type: "awb", Name: "Air Waybill", URL: "#", UploadedAt: mustTime("2024-01-27T10:00:00Z")},
				{ID: 2, Type: "health_cert", Name: "Health Certificate", URL: "#", UploadedAt: mustTime("2024-01-27T10:00:00Z")},
			},
			Notes:     "Delivered successfully - fragile item",
			CreatedAt: mustTime("2024-01-25T10:00:00Z"), UpdatedAt: mustTime("2024-01-30T16:00:00Z"),
		},
		{
			ID: 5, ShipmentNumber: "SHP-2024-005", OrderID: 1, OrderNumber: "SO-2024-001",
			BuyerName: "ABC Corporation", DestinationCountry: "United States",
			DestinationPort: "Port of New York", TransportMode: entity.TransportModeSea,
			CarrierName: "COSCO Shipping", VoyageNumber: "COSCO-2024-0234",
			ContainerNumber: "COSU-345678-9", BLNumber: "BL-NYC-2024-003",
			ETD: "2024-01-25", ETA: "2024-02-15", Status: entity.ShipmentStatusCustoms,
			Documents: []entity.ShipmentDocument{
				{ID: 1, Type: "bl", Name: "Bill of Lading", URL: "#", UploadedAt: mustTime("2024-01-24T10:00:00Z")},
				{ID: 2, Type: "coo", Name: "Certificate of Origin", URL: "#", UploadedAt: mustTime("2024-01-24T10:00:00Z")},
				{ID: 3, Type: "invoice", Name: "Commercial Invoice", URL: "#", UploadedAt: mustTime("2024-01-24T10:00:00Z")},
			},
			Notes:     "At customs clearance",
			CreatedAt: mustTime("2024-01-20T10:00:00Z"), UpdatedAt: mustTime("2024-02-10T12:00:00Z"),
		},
		{
			ID: 6, ShipmentNumber: "SHP-2024-006", OrderID: 8, OrderNumber: "SO-2024-008",
			BuyerName: "ABC Corporation", DestinationCountry: "United States",
			DestinationPort: "Port of Los Angeles", TransportMode: entity.TransportModeSea,
			CarrierName: "Hapag-Lloyd", VoyageNumber: "HL-2024-0189",
			ETD: "2024-02-25", ETA: "2024-03-10", Status: entity.ShipmentStatusCreated,
			Documents: []entity.ShipmentDocument{},
			Notes:     "Scheduled for next week",
			CreatedAt: mustTime("2024-02-18T10:00:00Z"), UpdatedAt: mustTime("2024-02-18T10:00:00Z"),
		},
	}
}
