package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/exporthub/exporthub-api/internal/application/analytics"
	"github.com/exporthub/exporthub-api/internal/application/dto"
)

// DashboardHandler expone el resumen del tablero (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devuelve widgets estáticos más agregados vivos.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
