package arancel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sib-bolivia/aranceles-api/internal/domain"
	"github.com/sib-bolivia/aranceles-api/internal/domain/arancel"
)

// Los límites de franja son parte del reglamento: 5 años cierra junior,
// 15 años cierra pleno. Los valores de borde se prueban explícitamente.
func TestFranjaPorAntiguedad_Limites(t *testing.T) {
	casos := []struct {
		anios  int
		franja arancel.Franja
	}{
		{0, arancel.Junior},
		{5, arancel.Junior},
		{6, arancel.Pleno},
		{15, arancel.Pleno},
		{16, arancel.Senior},
		{40, arancel.Senior},
	}
	for _, c := range casos {
		assert.Equalf(t, c.franja, arancel.FranjaPorAntiguedad(c.anios),
			"%d años debe caer en franja %s", c.anios, c.franja)
	}
}

// Vector de referencia del reglamento: ingeniero pleno (10 años) con maestría,
// en ciudad, La Paz, actividad de diseño.
//
//	factor departamental = 1.10 × (151.85 / 147.14)   (sin redondeo intermedio)
//	mensual = round0(3300 × 3.00 × 1.06 × f.dep × 1.00) = 11913
//	hora    = round0(11913 / 240) = round0(49.6375)     = 50
//	diario  = round0(50 × 8)                            = 400
func TestCalcular_VectorReferencia(t *testing.T) {
	tabla := arancel.NuevaTabla(filasSeedOficial())

	tarifa, err := tabla.Calcular(arancel.Solicitud{
		Antiguedad:   10,
		Departamento: arancel.LaPaz,
		Formacion:    "Maestría",
		Ubicacion:    arancel.Ciudad,
		Actividad:    "Diseño, planificación y ejecución",
	})
	require.NoError(t, err)

	assert.Equal(t, "11913", tarifa.Mensual.String(), "arancel mensual")
	assert.Equal(t, "50", tarifa.Hora.String(), "arancel hora")
	assert.Equal(t, "400", tarifa.Diario.String(), "arancel diario")
}

// La cadencia de redondeo es: mensual primero, hora sobre el mensual ya
// redondeado, diario sobre la hora ya redondeada.
func TestCalcular_CadenciaRedondeo(t *testing.T) {
	tabla := arancel.NuevaTabla(filasSeedOficial())

	for _, depto := range arancel.Departamentos {
		tarifa, err := tabla.Calcular(arancel.Solicitud{
			Antiguedad:   20,
			Departamento: depto,
			Formacion:    "Doctorado",
			Ubicacion:    arancel.Campo,
			Actividad:    "Avalúo, peritaje y especialidad",
		})
		require.NoErrorf(t, err, "departamento %s", depto)

		horasMes := decimalInt(arancel.HorasPorMes)
		horasDia := decimalInt(arancel.HorasPorDia)
		assert.Truef(t, tarifa.Hora.Equal(tarifa.Mensual.Div(horasMes).Round(0)),
			"%s: hora debe ser round0(mensual/240)", depto)
		assert.Truef(t, tarifa.Diario.Equal(tarifa.Hora.Mul(horasDia).Round(0)),
			"%s: diario debe ser round0(hora×8)", depto)
	}
}

// El cambio de franja en el límite de 5 años debe cambiar el factor aplicado
// (junior_ciudad 1.80 contra pleno_ciudad 3.00), no solo la etiqueta.
func TestCalcular_FranjaCambiaFactor(t *testing.T) {
	tabla := arancel.NuevaTabla(filasSeedOficial())

	base := arancel.Solicitud{
		Departamento: arancel.SantaCruz,
		Formacion:    "Licenciatura",
		Ubicacion:    arancel.Ciudad,
		Actividad:    "Diseño, planificación y ejecución",
	}

	base.Antiguedad = 5
	junior, err := tabla.Calcular(base)
	require.NoError(t, err)

	base.Antiguedad = 6
	pleno, err := tabla.Calcular(base)
	require.NoError(t, err)

	assert.True(t, pleno.Mensual.GreaterThan(junior.Mensual),
		"a 6 años el factor pleno (3.00) debe superar al junior (1.80)")
}

// Un factor ausente en el seed aborta el cálculo con ErrFactorNoEncontrado;
// jamás se calcula con un valor por defecto.
func TestCalcular_FactorFaltante(t *testing.T) {
	casos := []struct {
		nombre string
		quitar string
	}{
		{"sin salario base", "salario_mensual_base"},
		{"sin ipc nacional", "ipc_nacional"},
		{"sin fce del departamento", "fce_La Paz"},
		{"sin ipc del departamento", "ipc_La Paz"},
		{"sin factor de antigüedad", "pleno_ciudad"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			tabla := arancel.NuevaTabla(filasSeedSin(c.quitar))
			_, err := tabla.Calcular(arancel.Solicitud{
				Antiguedad:   10,
				Departamento: arancel.LaPaz,
				Formacion:    "Maestría",
				Ubicacion:    arancel.Ciudad,
				Actividad:    "Diseño, planificación y ejecución",
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrFactorNoEncontrado)
			assert.Contains(t, err.Error(), c.quitar,
				"el error debe nombrar la clave ausente para diagnosticar el seed")
		})
	}
}

// Formación o actividad fuera del conjunto vigente son errores de validación
// (el conjunto es dinámico: lo define la tabla, no un enum del código).
func TestCalcular_FormacionYActividadDinamicas(t *testing.T) {
	tabla := arancel.NuevaTabla(filasSeedOficial())

	solicitud := arancel.Solicitud{
		Antiguedad:   10,
		Departamento: arancel.LaPaz,
		Formacion:    "Técnico Superior",
		Ubicacion:    arancel.Ciudad,
		Actividad:    "Diseño, planificación y ejecución",
	}
	_, err := tabla.Calcular(solicitud)
	assert.ErrorIs(t, err, domain.ErrFormacionInvalida)

	solicitud.Formacion = "Maestría"
	solicitud.Actividad = "Docencia"
	_, err = tabla.Calcular(solicitud)
	assert.ErrorIs(t, err, domain.ErrActividadInvalida)
}

func TestCalcular_AntiguedadNegativa(t *testing.T) {
	tabla := arancel.NuevaTabla(filasSeedOficial())
	_, err := tabla.Calcular(arancel.Solicitud{
		Antiguedad:   -1,
		Departamento: arancel.LaPaz,
		Formacion:    "Maestría",
		Ubicacion:    arancel.Ciudad,
		Actividad:    "Diseño, planificación y ejecución",
	})
	assert.ErrorIs(t, err, domain.ErrAntiguedadInvalida)
}
