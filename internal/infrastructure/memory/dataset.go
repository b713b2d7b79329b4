// Package memory implementa los puertos de repositorio sobre un snapshot
// inmutable en memoria. No hay base de datos: todas las colecciones se cargan
// al arranque desde fixtures y ninguna operación las muta.
package memory

import (
	"time"

	"github.com/exporthub/exporthub-api/internal/domain/entity"
)

// Dataset snapshot completo de las colecciones del dominio. El orden de cada
// slice es significativo: los listados lo preservan tal cual.
type Dataset struct {
	Products       []entity.Product
	Invoices       []entity.Invoice
	Payments       []entity.Payment
	Users          []entity.User
	Shipments      []entity.Shipment
	StockItems     []entity.StockItem
	StockMutations []entity.StockMutation
	Warehouses     []entity.Warehouse

	KPIs        []entity.KPI
	Sales       entity.SalesSeries
	TopProducts []entity.TopProduct
	Activities  []entity.Activity
}

// DefaultDataset arma el snapshot con los fixtures de demostración.
func DefaultDataset() Dataset {
	return Dataset{
		Products:       seedProducts(),
		Invoices:       seedInvoices(),
		Payments:       seedPayments(),
		Users:          seedUsers(),
		Shipments:      seedShipments(),
		StockItems:     seedStockItems(),
		StockMutations: seedStockMutations(),
		Warehouses:     seedWarehouses(),
		KPIs:           seedKPIs(),
		Sales:          seedSalesSeries(),
		TopProducts:    seedTopProducts(),
		Activities:     seedActivities(),
	}
}

// mustTime parsea un timestamp RFC 3339 de fixture; un fixture malformado es
// un error de programación, no un estado recuperable.
func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("memory: fixture con timestamp inválido: " + s)
	}
	return t
}
