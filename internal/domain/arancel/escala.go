package arancel

import (
	"github.com/shopspring/decimal"

	"github.com/sib-bolivia/aranceles-api/internal/domain/entity"
)

// CategoriaEscalada es la vista transitoria del tarifario con los valores
// multiplicados por el arancel hora. No se persiste nunca.
type CategoriaEscalada struct {
	Nombre  string
	Niveles []NivelEscalado
}

// NivelEscalado agrupa los elementos escalados de un nivel.
type NivelEscalado struct {
	Nombre    string
	Elementos []ElementoEscalado
}

// ElementoEscalado es un ítem del tarifario con su valor final en bolivianos.
type ElementoEscalado struct {
	Detalle string
	Unidad  string
	Valor   decimal.Decimal
}

// EscalarCatalogo multiplica el valor base de cada elemento por el arancel
// hora y redondea a 0 decimales. Un catálogo vacío produce una lista vacía.
func EscalarCatalogo(categorias []entity.Categoria, hora decimal.Decimal) []CategoriaEscalada {
	out := make([]CategoriaEscalada, 0, len(categorias))
	for _, c := range categorias {
		niveles := make([]NivelEscalado, 0, len(c.Niveles))
		for _, n := range c.Niveles {
			elementos := make([]ElementoEscalado, 0, len(n.Elementos))
			for _, e := range n.Elementos {
				elementos = append(elementos, ElementoEscalado{
					Detalle: e.Detalle,
					Unidad:  e.Unidad,
					Valor:   e.Valor.Mul(hora).Round(0),
				})
			}
			niveles = append(niveles, NivelEscalado{Nombre: n.Nombre, Elementos: elementos})
		}
		out = append(out, CategoriaEscalada{Nombre: c.Nombre, Niveles: niveles})
	}
	return out
}
