// Package rbac implementa el punto de decisión de autorización: un mapa
// estático rol → conjunto de capacidades. Es solo la decisión; la validación
// de sesión y la aplicación viven en el middleware HTTP.
package rbac

// Capability etiqueta de módulo del panel sobre la que se autoriza el acceso.
type Capability string

// Capacidades disponibles (una por módulo de navegación).
const (
	CapDashboard  Capability = "dashboard"
	CapBarang     Capability = "barang"
	CapStok       Capability = "stok"
	CapPelanggan  Capability = "pelanggan"
	CapOrder      Capability = "order"
	CapPengiriman Capability = "pengiriman"
	CapKeuangan   Capability = "keuangan"
	CapLaporan    Capability = "laporan"
	CapPengguna   Capability = "pengguna"
	CapPengaturan Capability = "pengaturan"
)

// PermissionSet conjunto de capacidades de un rol. El comodín es una variante
// explícita del tipo, no un valor mágico dentro del conjunto.
type PermissionSet struct {
	all  bool
	caps map[Capability]struct{}
}

// AllPermissions devuelve el conjunto comodín (toda capacidad permitida).
func AllPermissions() PermissionSet {
	return PermissionSet{all: true}
}

// Permissions construye un conjunto explícito de capacidades.
func Permissions(caps ...Capability) PermissionSet {
	m := make(map[Capability]struct{}, len(caps))
	for _, c := range caps {
		m[c] = struct{}{}
	}
	return PermissionSet{caps: m}
}

// Allows indica si el conjunto contiene la capacidad.
func (s PermissionSet) Allows(c Capability) bool {
	if s.all {
		return true
	}
	_, ok := s.caps[c]
	return ok
}

// rolePermissions mapa estático rol → capacidades. Los roles desconocidos
// degradan al nivel viewer (el más restrictivo mapeado), nunca a denegar todo
// ni a permitir todo.
var rolePermissions = map[string]PermissionSet{
	"super_admin": AllPermissions(),
	"admin": Permissions(
		CapDashboard, CapBarang, CapStok, CapPelanggan, CapOrder,
		CapPengiriman, CapKeuangan, CapLaporan, CapPengguna, CapPengaturan,
	),
	"manager": Permissions(
		CapDashboard, CapBarang, CapStok, CapPelanggan, CapOrder,
		CapPengiriman, CapKeuangan, CapLaporan,
	),
	"staff": Permissions(
		CapDashboard, CapBarang, CapPelanggan, CapOrder,
	),
	"warehouse": Permissions(
		CapDashboard, CapStok, CapPengiriman,
	),
	"viewer": Permissions(
		CapDashboard, CapLaporan,
	),
}

// fallbackRole nivel al que degradan los roles no mapeados.
const fallbackRole = "viewer"

// PermissionsFor devuelve el conjunto de capacidades del rol; el de viewer si
// el rol no está mapeado.
func PermissionsFor(role string) PermissionSet {
	if set, ok := rolePermissions[role]; ok {
		return set
	}
	return rolePermissions[fallbackRole]
}

// HasPermission decide si el rol puede acceder a la capacidad.
func HasPermission(role string, c Capability) bool {
	return PermissionsFor(role).Allows(c)
}
