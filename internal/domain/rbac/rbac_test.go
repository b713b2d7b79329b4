package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exporthub/exporthub-api/internal/domain/rbac"
)

func TestSuperAdminHasEverything(t *testing.T) {
	caps := []rbac.Capability{
		rbac.CapDashboard, rbac.CapBarang, rbac.CapStok, rbac.CapPelanggan,
		rbac.CapOrder, rbac.CapPengiriman, rbac.CapKeuangan, rbac.CapLaporan,
		rbac.CapPengguna, rbac.CapPengaturan,
		rbac.Capability("modulo-futuro"), // el comodín cubre incluso capacidades nuevas
	}
	for _, c := range caps {
		assert.True(t, rbac.HasPermission("super_admin", c), "super_admin debe poder: %s", c)
	}
}

func TestViewerTier(t *testing.T) {
	assert.True(t, rbac.HasPermission("viewer", rbac.CapDashboard))
	assert.True(t, rbac.HasPermission("viewer", rbac.CapLaporan))
	assert.False(t, rbac.HasPermission("viewer", rbac.CapKeuangan))
	assert.False(t, rbac.HasPermission("viewer", rbac.CapPengguna))
}

// Un rol no mapeado degrada al conjunto de viewer: nunca denegar todo,
// nunca permitir todo.
func TestUnknownRoleDegradesToViewer(t *testing.T) {
	assert.True(t, rbac.HasPermission("intern", rbac.CapDashboard))
	assert.False(t, rbac.HasPermission("intern", rbac.CapKeuangan))
	assert.False(t, rbac.HasPermission("", rbac.CapPengaturan))
}

func TestRoleBoundaries(t *testing.T) {
	// warehouse opera stock y envíos pero no finanzas ni usuarios
	assert.True(t, rbac.HasPermission("warehouse", rbac.CapStok))
	assert.True(t, rbac.HasPermission("warehouse", rbac.CapPengiriman))
	assert.False(t, rbac.HasPermission("warehouse", rbac.CapKeuangan))
	assert.False(t, rbac.HasPermission("warehouse", rbac.CapPengguna))

	// manager llega a finanzas pero no administra usuarios ni configuración
	assert.True(t, rbac.HasPermission("manager", rbac.CapKeuangan))
	assert.False(t, rbac.HasPermission("manager", rbac.CapPengguna))
	assert.False(t, rbac.HasPermission("manager", rbac.CapPengaturan))

	// admin tiene todos los módulos de forma explícita, sin comodín
	assert.True(t, rbac.HasPermission("admin", rbac.CapPengaturan))
	assert.False(t, rbac.HasPermission("admin", rbac.Capability("modulo-futuro")))
}
