package entity

import "time"

// Roles válidos para User. RoleSuperAdmin solo aparece en la sesión simulada;
// el resto proviene del directorio de usuarios.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleStaff      = "staff"
	RoleWarehouse  = "warehouse"
	RoleViewer     = "viewer"
)

// Estados válidos para User.
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// User representa un usuario del sistema.
type User struct {
	ID           int
	Name         string
	Email        string // único en la colección
	PasswordHash string // bcrypt; nunca se expone en respuestas
	Role         string // admin, manager, staff, warehouse
	Status       string // active, inactive, suspended
	Phone        string
	Department   string
	LastLogin    string // RFC 3339; vacío si nunca entró
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
