package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/exporthub/exporthub-api/internal/application/dto"
	"github.com/exporthub/exporthub-api/internal/domain/repository"
	"github.com/exporthub/exporthub-api/internal/infrastructure/excel"
)

// ReportHandler genera reportes descargables (protegido).
type ReportHandler struct {
	stock repository.StockRepository
	gen   *excel.StockReportGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(stock repository.StockRepository, gen *excel.StockReportGenerator) *ReportHandler {
	return &ReportHandler{stock: stock, gen: gen}
}

// StockXLSX descarga el reporte de existencias en formato .xlsx.
func (h *ReportHandler) StockXLSX(c *fiber.Ctx) error {
	items, err := h.stock.ListItems()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out, err := h.gen.Generate(items)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "REPORT_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock.xlsx"`)
	return c.Send(out)
}
