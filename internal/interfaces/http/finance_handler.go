package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/exporthub/exporthub-api/internal/application/dto"
	"github.com/exporthub/exporthub-api/internal/application/finance"
	"github.com/exporthub/exporthub-api/internal/application/usecase"
	"github.com/exporthub/exporthub-api/internal/infrastructure/pdf"
)

// FinanceHandler maneja facturas, pagos y conciliación (protegido).
type FinanceHandler struct {
	uc         *usecase.FinanceUseCase
	reconciler *finance.Reconciler
	pdfGen     *pdf.InvoicePDFGenerator
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *usecase.FinanceUseCase, reconciler *finance.Reconciler, pdfGen *pdf.InvoicePDFGenerator) *FinanceHandler {
	return &FinanceHandler{uc: uc, reconciler: reconciler, pdfGen: pdfGen}
}

// Invoices lista las facturas en el orden del snapshot.
func (h *FinanceHandler) Invoices(c *fiber.Ctx) error {
	out, err := h.uc.Invoices()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// InvoiceByID obtiene una factura por id.
func (h *FinanceHandler) InvoiceByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	out, err := h.uc.InvoiceByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	return c.JSON(out)
}

// InvoicePayments lista los pagos aplicados a una factura.
func (h *FinanceHandler) InvoicePayments(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	out, err := h.uc.PaymentsByInvoice(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Payments lista todos los pagos.
func (h *FinanceHandler) Payments(c *fiber.Ctx) error {
	out, err := h.uc.Payments()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Summary agregados de cartera con montos formateados.
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Reconcile ejecuta la conciliación consultiva pagos vs. PaidAmount.
func (h *FinanceHandler) Reconcile(c *fiber.Ctx) error {
	out, err := h.reconciler.Run()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// InvoicePDF genera la representación gráfica de la factura.
func (h *FinanceHandler) InvoicePDF(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	inv, err := h.uc.InvoiceEntity(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if inv == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	out, err := h.pdfGen.Generate(inv)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+inv.InvoiceNumber+`.pdf"`)
	return c.Send(out)
}
