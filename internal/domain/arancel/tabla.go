// Package arancel implementa el motor de cálculo del arancel profesional:
// factores multiplicativos sobre un salario base, tarifa mensual/diaria/hora
// y escalado del tarifario de trabajos por el arancel hora.
package arancel

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/sib-bolivia/aranceles-api/internal/domain"
	"github.com/sib-bolivia/aranceles-api/internal/domain/entity"
)

// Nombres de los escalares y prefijos de la tabla incidencias_laborales.
const (
	ClaveSalarioBase = "salario_mensual_base"
	ClaveIPCNacional = "ipc_nacional"

	PrefijoFCE       = "fce_"
	PrefijoIPC       = "ipc_"
	PrefijoFormacion = "form_"
	PrefijoActividad = "actividad_"
)

// ClaveAntiguedad indexa el factor por franja de antigüedad y ubicación.
type ClaveAntiguedad struct {
	Franja    Franja
	Ubicacion Ubicacion
}

// TablaFactores es la vista tipada de incidencias_laborales. Se construye con
// NuevaTabla a partir de las filas planas; cada dimensión vive en su propio
// mapa con clave cerrada, salvo formación y actividad que son conjuntos
// dinámicos (crecen cuando se siembran nuevas filas form_/actividad_).
type TablaFactores struct {
	salarioBase *decimal.Decimal
	ipcNacional *decimal.Decimal
	fce         map[Departamento]decimal.Decimal
	ipc         map[Departamento]decimal.Decimal
	formacion   map[string]decimal.Decimal
	actividad   map[string]decimal.Decimal
	antiguedad  map[ClaveAntiguedad]decimal.Decimal
}

// NuevaTabla clasifica las filas planas por prefijo. Filas con nombres que no
// corresponden a ninguna dimensión conocida se ignoran: el error por dato
// faltante se reporta recién en la búsqueda, con el nombre exacto de la clave,
// para no enmascarar un seed incompleto con un valor por defecto.
func NuevaTabla(filas []entity.Incidencia) *TablaFactores {
	t := &TablaFactores{
		fce:        make(map[Departamento]decimal.Decimal),
		ipc:        make(map[Departamento]decimal.Decimal),
		formacion:  make(map[string]decimal.Decimal),
		actividad:  make(map[string]decimal.Decimal),
		antiguedad: make(map[ClaveAntiguedad]decimal.Decimal),
	}
	for _, f := range filas {
		nombre := norm.NFC.String(strings.TrimSpace(f.Nombre))
		valor := f.Valor
		switch {
		case nombre == ClaveSalarioBase:
			v := valor
			t.salarioBase = &v
		case nombre == ClaveIPCNacional:
			v := valor
			t.ipcNacional = &v
		case strings.HasPrefix(nombre, PrefijoFCE):
			if d, err := ParseDepartamento(strings.TrimPrefix(nombre, PrefijoFCE)); err == nil {
				t.fce[d] = valor
			}
		case strings.HasPrefix(nombre, PrefijoIPC):
			if d, err := ParseDepartamento(strings.TrimPrefix(nombre, PrefijoIPC)); err == nil {
				t.ipc[d] = valor
			}
		case strings.HasPrefix(nombre, PrefijoFormacion):
			t.formacion[strings.TrimPrefix(nombre, PrefijoFormacion)] = valor
		case strings.HasPrefix(nombre, PrefijoActividad):
			t.actividad[strings.TrimPrefix(nombre, PrefijoActividad)] = valor
		default:
			if clave, ok := parseClaveAntiguedad(nombre); ok {
				t.antiguedad[clave] = valor
			}
		}
	}
	return t
}

func parseClaveAntiguedad(nombre string) (ClaveAntiguedad, bool) {
	franja, resto, ok := strings.Cut(nombre, "_")
	if !ok {
		return ClaveAntiguedad{}, false
	}
	switch Franja(franja) {
	case Junior, Pleno, Senior:
	default:
		return ClaveAntiguedad{}, false
	}
	ubicacion, err := ParseUbicacion(resto)
	if err != nil {
		return ClaveAntiguedad{}, false
	}
	return ClaveAntiguedad{Franja: Franja(franja), Ubicacion: ubicacion}, true
}

// SalarioBase devuelve el salario mensual base del seed.
func (t *TablaFactores) SalarioBase() (decimal.Decimal, error) {
	if t.salarioBase == nil {
		return decimal.Zero, faltante(ClaveSalarioBase)
	}
	return *t.salarioBase, nil
}

// IPCNacional devuelve el índice de precios al consumidor nacional.
func (t *TablaFactores) IPCNacional() (decimal.Decimal, error) {
	if t.ipcNacional == nil {
		return decimal.Zero, faltante(ClaveIPCNacional)
	}
	return *t.ipcNacional, nil
}

// FCE devuelve el factor de costo de vida del departamento.
func (t *TablaFactores) FCE(d Departamento) (decimal.Decimal, error) {
	v, ok := t.fce[d]
	if !ok {
		return decimal.Zero, faltante(PrefijoFCE + string(d))
	}
	return v, nil
}

// IPC devuelve el índice de precios del departamento.
func (t *TablaFactores) IPC(d Departamento) (decimal.Decimal, error) {
	v, ok := t.ipc[d]
	if !ok {
		return decimal.Zero, faltante(PrefijoIPC + string(d))
	}
	return v, nil
}

// FactorFormacion devuelve el factor por grado académico. El conjunto de
// formaciones válidas es el que exista en la tabla al momento de la consulta.
func (t *TablaFactores) FactorFormacion(formacion string) (decimal.Decimal, error) {
	v, ok := t.formacion[norm.NFC.String(formacion)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrFormacionInvalida, formacion)
	}
	return v, nil
}

// FactorActividad devuelve el factor por tipo de actividad (conjunto dinámico).
func (t *TablaFactores) FactorActividad(actividad string) (decimal.Decimal, error) {
	v, ok := t.actividad[norm.NFC.String(actividad)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrActividadInvalida, actividad)
	}
	return v, nil
}

// FactorAntiguedad devuelve el factor por franja × ubicación.
func (t *TablaFactores) FactorAntiguedad(franja Franja, u Ubicacion) (decimal.Decimal, error) {
	v, ok := t.antiguedad[ClaveAntiguedad{Franja: franja, Ubicacion: u}]
	if !ok {
		return decimal.Zero, faltante(string(franja) + "_" + string(u))
	}
	return v, nil
}

// Formaciones lista los grados académicos vigentes, ordenados.
func (t *TablaFactores) Formaciones() []string {
	return clavesOrdenadas(t.formacion)
}

// Actividades lista los tipos de actividad vigentes, ordenados.
func (t *TablaFactores) Actividades() []string {
	return clavesOrdenadas(t.actividad)
}

func clavesOrdenadas(m map[string]decimal.Decimal) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func faltante(clave string) error {
	return fmt.Errorf("%w: %q", domain.ErrFactorNoEncontrado, clave)
}
