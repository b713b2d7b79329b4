package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exporthub/exporthub-api/internal/domain/catalog"
)

func TestResolveKnownCode(t *testing.T) {
	opt := catalog.ProductStatuses.Resolve("aktif")
	assert.Equal(t, "Aktif", opt.Label)
	assert.Equal(t, "success", opt.Color)

	opt = catalog.InvoiceStatuses.Resolve("overdue")
	assert.Equal(t, "Overdue", opt.Label)
	assert.Equal(t, "red", opt.Color)
}

// Resolve es total: un código ajeno a la enumeración devuelve una entrada
// sintética con el propio código como label y el color neutro de la tabla.
func TestResolveUnknownCodeFallsBack(t *testing.T) {
	opt := catalog.ProductStatuses.Resolve("legacy-code")
	assert.Equal(t, "legacy-code", opt.Code)
	assert.Equal(t, "legacy-code", opt.Label)
	assert.Equal(t, "secondary", opt.Color)

	opt = catalog.ShipmentStatuses.Resolve("")
	assert.Equal(t, "", opt.Label)
	assert.Equal(t, "gray", opt.Color)
}

func TestResolveEveryConfiguredCode(t *testing.T) {
	tables := []catalog.Table{
		catalog.ProductCategories, catalog.ProductStatuses,
		catalog.InvoiceStatuses, catalog.PaymentStatuses, catalog.PaymentMethods,
		catalog.UserRoles, catalog.UserStatuses,
		catalog.TransportModes, catalog.ShipmentStatuses,
		catalog.MutationTypes, catalog.MutationStatuses,
	}
	for _, table := range tables {
		for _, o := range table.Options {
			got := table.Resolve(o.Code)
			assert.Equal(t, o, got)
			assert.True(t, table.Contains(o.Code))
		}
	}
}

func TestLabelHelper(t *testing.T) {
	assert.Equal(t, "Bank Transfer", catalog.PaymentMethods.Label("bank_transfer"))
	assert.Equal(t, "wire", catalog.PaymentMethods.Label("wire"))
}
