package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OptionDTO entrada de catálogo expuesta al cliente.
type OptionDTO struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}
