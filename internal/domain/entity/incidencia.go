package entity

import "github.com/shopspring/decimal"

// Incidencia representa una fila de la tabla incidencias_laborales: un factor
// multiplicativo del arancel identificado por su nombre (único). Los nombres
// siguen la convención de prefijos del seed oficial: "fce_<departamento>",
// "ipc_<departamento>", "form_<formación>", "actividad_<actividad>",
// "<franja>_<ubicación>" y los escalares "salario_mensual_base" e "ipc_nacional".
type Incidencia struct {
	Nombre string
	Valor  decimal.Decimal
}
