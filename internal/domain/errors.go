package domain

import "errors"

// Errores de dominio. Las búsquedas por id/código no usan errores para
// reportar ausencia: devuelven (nil, nil) o un registro de fallback.
var (
	ErrInvalidInput = errors.New("entrada inválida")
)
