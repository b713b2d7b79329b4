package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/exporthub/exporthub-api/internal/application/dto"
	"github.com/exporthub/exporthub-api/internal/domain/rbac"
)

// RequirePermission devuelve un middleware Fiber que verifica si el rol del
// token tiene la capacidad del módulo. Debe usarse DESPUÉS de AuthMiddleware
// (necesita LocalRole).
//
// Comportamiento:
//   - 401 Unauthorized → no hay rol en el contexto.
//   - 403 Forbidden    → el rol no tiene la capacidad; los roles desconocidos
//     degradan al nivel de viewer dentro de rbac.
func RequirePermission(capability rbac.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "rol no encontrado en el token",
			})
		}
		if !rbac.HasPermission(role, capability) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + role + "' no tiene acceso al módulo '" + string(capability) + "'",
			})
		}
		return c.Next()
	}
}
