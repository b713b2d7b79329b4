package dto

import "time"

// UserResponse usuario del directorio; nunca incluye el hash de contraseña.
type UserResponse struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       OptionDTO `json:"role"`
	Status     OptionDTO `json:"status"`
	Phone      string    `json:"phone,omitempty"`
	Department string    `json:"department,omitempty"`
	LastLogin  string    `json:"last_login,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserStatsResponse conteos del directorio de usuarios.
type UserStatsResponse struct {
	ActiveUsers int `json:"active_users"`
	Admins      int `json:"admins"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionUser identidad de la sesión emitida.
type SessionUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse resultado del login simulado. Success refleja el contrato del
// sistema de origen: el fallo se reporta como bandera, no como error HTTP 5xx.
type LoginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token,omitempty"`
	User    SessionUser `json:"user"`
}
