// Package catalog contiene las tablas de referencia del dominio: enumeraciones
// cerradas de códigos con sus metadatos de presentación (label y color).
// Las tablas son secuencias ordenadas e inmutables; nunca se mutan en runtime.
package catalog

// Option entrada de una tabla de referencia.
type Option struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

// Table tabla de referencia ordenada. FallbackColor es el color neutro que se
// asigna cuando se resuelve un código desconocido.
type Table struct {
	Options       []Option
	FallbackColor string
}

// Resolve busca el código en la tabla. Si no está (deriva de datos), devuelve
// una entrada sintética cuyo label es el propio código y cuyo color es el
// neutro de la tabla. Nunca falla: la función es total sobre cualquier código.
func (t Table) Resolve(code string) Option {
	for _, o := range t.Options {
		if o.Code == code {
			return o
		}
	}
	return Option{Code: code, Label: code, Color: t.FallbackColor}
}

// Contains indica si el código pertenece a la enumeración cerrada.
func (t Table) Contains(code string) bool {
	for _, o := range t.Options {
		if o.Code == code {
			return true
		}
	}
	return false
}

// Label resuelve solo la etiqueta del código (el propio código si no existe).
func (t Table) Label(code string) string {
	return t.Resolve(code).Label
}
