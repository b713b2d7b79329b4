package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/exporthub/exporthub-api/internal/infrastructure/memory"
)

func TestGenerateStockReport(t *testing.T) {
	store := memory.NewSeeded()
	items, err := store.Stock().ListItems()
	require.NoError(t, err)

	out, err := NewStockReportGenerator().Generate(items)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)

	// Cabecera + una fila por existencia.
	require.Len(t, rows, len(items)+1)
	assert.Equal(t, "product_sku", rows[0][1])
	assert.Equal(t, items[0].ProductSKU, rows[1][1])
	assert.Equal(t, items[0].WarehouseName, rows[1][3])
}

func TestGenerateStockReportEmpty(t *testing.T) {
	out, err := NewStockReportGenerator().Generate(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
