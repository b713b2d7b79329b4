package memory

import (
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/exporthub/exporthub-api/internal/domain/entity"
)

// seedPassword contraseña compartida de los usuarios de demo. Se puede
// sobreescribir con SEED_USER_PASSWORD; el valor por defecto solo existe para
// desarrollo (no hay despliegues con datos reales detrás de este snapshot).
func seedPassword() string {
	if v := os.Getenv("SEED_USER_PASSWORD"); v != "" {
		return v
	}
	log.Warn().Msg("memory: usando contraseña de demo por defecto; defina SEED_USER_PASSWORD para cambiarla")
	return "exporthub123"
}

var (
	seedHashOnce sync.Once
	seedHash     string
)

// seedPasswordHash hashea la contraseña seed una sola vez por proceso
// (bcrypt es caro y el dataset se reconstruye en cada test).
func seedPasswordHash() string {
	seedHashOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword()), bcrypt.DefaultCost)
		if err != nil {
			panic("memory: bcrypt sobre la contraseña seed: " + err.Error())
		}
		seedHash = string(hash)
	})
	return seedHash
}

func seedUsers() []entity.User {
	pw := seedPasswordHash()

	return []entity.User{
		{
			ID: 1, Name: "Admin Sistem", Email: "admin@exporthub.com", PasswordHash: pw,
			Role: entity.RoleAdmin, Status: entity.UserStatusActive,
			Phone: "+62 812 3456 7890", Department: "IT", LastLogin: "2024-02-20T09:30:00Z",
			CreatedAt: mustTime("2024-01-01T00:00:00Z"), UpdatedAt: mustTime("2024-02-20T09:30:00Z"),
		},
		{
			ID: 2, Name: "Budi Santoso", Email: "budi@exporthub.com", PasswordHash: pw,
			Role: entity.RoleManager, Status: entity.UserStatusActive,
			Phone: "+62 812 3456 7891", Department: "Operations", LastLogin: "2024-02-19T14:22:00Z",
			CreatedAt: mustTime("2024-01-05T00:00:00Z"), UpdatedAt: mustTime("2024-02-19T14:22:00Z"),
		},
		{
			ID: 3, Name: "Siti Aminah", Email: "siti@exporthub.com", PasswordHash: pw,
			Role: entity.RoleStaff, Status: entity.UserStatusActive,
			Phone: "+62 812 3456 7892", Department: "Sales", LastLogin: "2024-02-20T08:15:00Z",
			CreatedAt: mustTime("2024-01-10T00:00:00Z"), UpdatedAt: mustTime("2024-02-20T08:15:00Z"),
		},
		{
			ID: 4, Name: "Ahmad Wijaya", Email: "ahmad@exporthub.com", PasswordHash: pw,
			Role: entity.RoleWarehouse, Status: entity.UserStatusActive,
			Phone: "+62 812 3456 7893", Department: "Warehouse", LastLogin: "2024-02-18T16:45:00Z",
			CreatedAt: mustTime("2024-01-15T00:00:00Z"), UpdatedAt: mustTime("2024-02-18T16:45:00Z"),
		},
		{
			ID: 5, Name: "Dewi Lestari", Email: "dewi@exporthub.com", PasswordHash: pw,
			Role: entity.RoleStaff, Status: entity.UserStatusActive,
			Phone: "+62 812 3456 7894", Department: "Finance", LastLogin: "2024-02-20T10:00:00Z",
			CreatedAt: mustTime("2024-01-20T00:00:00Z"), UpdatedAt: mustTime("2024-02-20T10:00:00Z"),
		},
		{
			ID: 6, Name: "Rudi Hermawan", Email: "rudi@exporthub.com", PasswordHash: pw,
			Role: entity.RoleWarehouse, Status: entity.UserStatusInactive,
			Phone: "+62 812 3456 7895", Department: "Warehouse", LastLogin: "2024-02-01T09:00:00Z",
			CreatedAt: mustTime("2024-01-25T00:00:00Z"), UpdatedAt: mustTime("2024-02-01T09:00:00Z"),
		},
		{
			ID: 7, Name: "Lisa Permata", Email: "lisa@exporthub.com", PasswordHash: pw,
			Role: entity.RoleManager, Status: entity.UserStatusActive,
			Phone: "+62 812 3456 7896", Department: "Marketing", LastLogin: "2024-02-19T11:30:00Z",
			CreatedAt: mustTime("2024-02-01T00:00:00Z"), UpdatedAt: mustTime("2024-02-19T11:30:00Z"),
		},
		{
			ID: 8, Name: "Doni Kusuma", Email: "doni@exporthub.com", PasswordHash: pw,
			Role: entity.RoleStaff, Status: entity.UserStatusSuspended,
			Phone: "+62 812 3456 7897", Department: "Operations", LastLogin: "2024-01-28T14:00:00Z",
			CreatedAt: mustTime("2024-02-05T00:00:00Z"), UpdatedAt: mustTime("2024-02-10T10:00:00Z"),
		},
	}
}
