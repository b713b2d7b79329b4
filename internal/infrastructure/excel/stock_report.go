// Package excel genera el reporte de existencias en formato .xlsx.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/exporthub/exporthub-api/internal/domain/entity"
)

// StockReportGenerator produce una hoja con una fila por existencia y la
// condición de alerta resuelta.
type StockReportGenerator struct{}

// NewStockReportGenerator construye el generador.
func NewStockReportGenerator() *StockReportGenerator { return &StockReportGenerator{} }

// Generate arma el libro y devuelve sus bytes. El orden de filas sigue el
// orden de entrada.
func (g *StockReportGenerator) Generate(items []*entity.StockItem) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"id",
		"product_sku",
		"product_name",
		"warehouse",
		"quantity",
		"unit",
		"min_stock",
		"max_stock",
		"batch_number",
		"expired_date",
		"low_stock",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: escribir cabecera: %w", err)
	}

	row := 2
	for _, it := range items {
		excelRow := []interface{}{
			it.ID,
			it.ProductSKU,
			it.ProductName,
			it.WarehouseName,
			it.Quantity,
			it.Unit,
			it.MinStock,
			it.MaxStock,
			it.BatchNumber,
			it.ExpiredDate,
			it.IsLow(),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("excel: celda de la fila %d: %w", row, err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("excel: escribir fila %d: %w", row, err)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
