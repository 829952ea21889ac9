package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrFactorNoEncontrado   = errors.New("factor no encontrado en incidencias laborales")
	ErrDepartamentoInvalido = errors.New("departamento inválido")
	ErrUbicacionInvalida    = errors.New("ubicación inválida")
	ErrFormacionInvalida    = errors.New("formación inválida")
	ErrActividadInvalida    = errors.New("actividad inválida")
	ErrAntiguedadInvalida   = errors.New("la antigüedad debe ser un entero no negativo")
	ErrInvalidInput         = errors.New("entrada inválida")
)
