package entity

import "github.com/shopspring/decimal"

// Categoria agrupa los trabajos arancelados por área (ej: Estructuras, Geotecnia).
type Categoria struct {
	ID      string
	Nombre  string
	Niveles []Nivel
}

// Nivel subdivide una categoría (ej: Obra menor, Obra mayor).
type Nivel struct {
	ID        string
	Nombre    string
	Elementos []Elemento
}

// Elemento es un ítem facturable del tarifario. Valor es la base sin escalar:
// se multiplica por el arancel hora al momento de la consulta y nunca se
// persiste escalado.
type Elemento struct {
	ID      string
	Detalle string
	Unidad  string
	Valor   decimal.Decimal
}
