package arancel

import (
	"github.com/shopspring/decimal"

	"github.com/sib-bolivia/aranceles-api/internal/domain"
)

// Jornada de referencia del arancel: 240 horas por mes, 8 horas por día.
const (
	HorasPorMes = 240
	HorasPorDia = 8
)

var (
	horasPorMes = decimal.NewFromInt(HorasPorMes)
	horasPorDia = decimal.NewFromInt(HorasPorDia)
)

// Solicitud son los datos del profesional para el cálculo del arancel.
type Solicitud struct {
	Antiguedad   int // años de experiencia
	Departamento Departamento
	Formacion    string
	Ubicacion    Ubicacion
	Actividad    string
}

// Tarifa es el arancel calculado, redondeado a bolivianos enteros.
type Tarifa struct {
	Mensual decimal.Decimal
	Diario  decimal.Decimal
	Hora    decimal.Decimal
}

// Calcular resuelve los factores y deriva el arancel mensual, diario y hora.
//
//	factor departamental = fce × (ipc departamental / ipc nacional)
//	mensual = salario base × f(franja,ubicación) × f(formación) × f(departamental) × f(actividad)
//	hora    = mensual / 240
//	diario  = hora × 8
//
// El redondeo a 0 decimales se aplica una sola vez por salida (mensual, luego
// hora sobre el mensual ya redondeado, luego diario sobre la hora redondeada);
// el factor departamental no se redondea en pasos intermedios.
// Un factor ausente aborta el cálculo: nunca se sustituye por un valor por
// defecto porque produciría un arancel verosímil pero incorrecto.
func (t *TablaFactores) Calcular(s Solicitud) (Tarifa, error) {
	if s.Antiguedad < 0 {
		return Tarifa{}, domain.ErrAntiguedadInvalida
	}
	franja := FranjaPorAntiguedad(s.Antiguedad)

	salarioBase, err := t.SalarioBase()
	if err != nil {
		return Tarifa{}, err
	}
	ipcNacional, err := t.IPCNacional()
	if err != nil {
		return Tarifa{}, err
	}
	fce, err := t.FCE(s.Departamento)
	if err != nil {
		return Tarifa{}, err
	}
	ipcDepto, err := t.IPC(s.Departamento)
	if err != nil {
		return Tarifa{}, err
	}
	fFormacion, err := t.FactorFormacion(s.Formacion)
	if err != nil {
		return Tarifa{}, err
	}
	fAntiguedad, err := t.FactorAntiguedad(franja, s.Ubicacion)
	if err != nil {
		return Tarifa{}, err
	}
	fActividad, err := t.FactorActividad(s.Actividad)
	if err != nil {
		return Tarifa{}, err
	}

	fDepartamental := fce.Mul(ipcDepto.Div(ipcNacional))
	mensual := salarioBase.
		Mul(fAntiguedad).
		Mul(fFormacion).
		Mul(fDepartamental).
		Mul(fActividad).
		Round(0)
	hora := mensual.Div(horasPorMes).Round(0)
	diario := hora.Mul(horasPorDia).Round(0)

	return Tarifa{Mensual: mensual, Diario: diario, Hora: hora}, nil
}
