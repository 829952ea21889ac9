package arancel_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sib-bolivia/aranceles-api/internal/domain/arancel"
	"github.com/sib-bolivia/aranceles-api/internal/domain/entity"
)

func catalogoDePrueba() []entity.Categoria {
	return []entity.Categoria{
		{
			Nombre: "Estructuras",
			Niveles: []entity.Nivel{
				{
					Nombre: "Obra menor",
					Elementos: []entity.Elemento{
						{Detalle: "Cálculo de zapatas", Unidad: "m2", Valor: decimal.RequireFromString("10")},
						{Detalle: "Losa alivianada", Unidad: "m2", Valor: decimal.RequireFromString("0.350")},
					},
				},
			},
		},
		{
			Nombre: "Geotecnia",
			Niveles: []entity.Nivel{
				{
					Nombre: "Estudios",
					Elementos: []entity.Elemento{
						{Detalle: "Estudio de suelos", Unidad: "Global", Valor: decimal.RequireFromString("24.5")},
					},
				},
			},
		},
	}
}

func TestEscalarCatalogo_MultiplicaPorHora(t *testing.T) {
	hora := decimal.NewFromInt(50)
	escalado := arancel.EscalarCatalogo(catalogoDePrueba(), hora)

	require.Len(t, escalado, 2)
	require.Len(t, escalado[0].Niveles, 1)
	require.Len(t, escalado[0].Niveles[0].Elementos, 2)

	zapatas := escalado[0].Niveles[0].Elementos[0]
	assert.Equal(t, "Cálculo de zapatas", zapatas.Detalle)
	assert.Equal(t, "m2", zapatas.Unidad)
	assert.Equal(t, "500", zapatas.Valor.String(), "10 × 50 = 500")

	losa := escalado[0].Niveles[0].Elementos[1]
	assert.Equal(t, "18", losa.Valor.String(), "round0(0.350 × 50) = 18")

	suelos := escalado[1].Niveles[0].Elementos[0]
	assert.Equal(t, "1225", suelos.Valor.String(), "24.5 × 50 = 1225")
}

// El escalado es lineal: duplicar el arancel hora duplica cada hoja
// (salvo el redondeo final a entero).
func TestEscalarCatalogo_Lineal(t *testing.T) {
	catalogo := catalogoDePrueba()
	h := decimal.NewFromInt(50)

	simple := arancel.EscalarCatalogo(catalogo, h)
	doble := arancel.EscalarCatalogo(catalogo, h.Mul(decimal.NewFromInt(2)))

	for i := range simple {
		for j := range simple[i].Niveles {
			for k, e := range simple[i].Niveles[j].Elementos {
				e2 := doble[i].Niveles[j].Elementos[k]
				diff := e2.Valor.Sub(e.Valor.Mul(decimal.NewFromInt(2))).Abs()
				assert.Truef(t, diff.LessThanOrEqual(decimal.NewFromInt(1)),
					"%s: 2h debe duplicar el valor (±1 por redondeo)", e.Detalle)
			}
		}
	}
}

// Escalar por 1 sobre valores enteros es la identidad.
func TestEscalarCatalogo_IdentidadConUno(t *testing.T) {
	catalogo := []entity.Categoria{{
		Nombre: "Vial",
		Niveles: []entity.Nivel{{
			Nombre: "Diseño",
			Elementos: []entity.Elemento{
				{Detalle: "Perfil longitudinal", Unidad: "km", Valor: decimal.NewFromInt(120)},
			},
		}},
	}}
	escalado := arancel.EscalarCatalogo(catalogo, decimal.NewFromInt(1))
	assert.Equal(t, "120", escalado[0].Niveles[0].Elementos[0].Valor.String())
}

// Catálogo vacío es un resultado válido, no un error.
func TestEscalarCatalogo_Vacio(t *testing.T) {
	escalado := arancel.EscalarCatalogo(nil, decimal.NewFromInt(50))
	assert.NotNil(t, escalado)
	assert.Empty(t, escalado)
}

// Escalar no debe mutar los valores base persistidos.
func TestEscalarCatalogo_NoMutaBase(t *testing.T) {
	catalogo := catalogoDePrueba()
	_ = arancel.EscalarCatalogo(catalogo, decimal.NewFromInt(50))
	assert.Equal(t, "10", catalogo[0].Niveles[0].Elementos[0].Valor.String())
}
