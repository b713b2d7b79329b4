package entity

// Warehouse representa una bodega donde se almacena inventario.
type Warehouse struct {
	ID       int
	Code     string // único en la colección (GUD-JKT, ...)
	Name     string
	Location string
}
