package arancel

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/sib-bolivia/aranceles-api/internal/domain"
)

// Departamento es el departamento de Bolivia donde se ejerce la actividad.
type Departamento string

const (
	Chuquisaca Departamento = "Chuquisaca"
	LaPaz      Departamento = "La Paz"
	Cochabamba Departamento = "Cochabamba"
	Oruro      Departamento = "Oruro"
	Potosi     Departamento = "Potosí"
	Tarija     Departamento = "Tarija"
	SantaCruz  Departamento = "Santa Cruz"
	Beni       Departamento = "Beni"
	Pando      Departamento = "Pando"
)

// Departamentos enumera los nueve departamentos en el orden oficial del INE.
var Departamentos = []Departamento{
	Chuquisaca, LaPaz, Cochabamba, Oruro, Potosi, Tarija, SantaCruz, Beni, Pando,
}

// ParseDepartamento valida un nombre de departamento. Normaliza a NFC porque
// "Potosí" llega en forma compuesta o descompuesta según el cliente.
func ParseDepartamento(s string) (Departamento, error) {
	canon := norm.NFC.String(strings.TrimSpace(s))
	for _, d := range Departamentos {
		if canon == string(d) {
			return d, nil
		}
	}
	return "", domain.ErrDepartamentoInvalido
}

// Ubicacion indica si el trabajo se realiza en ciudad o en campo.
type Ubicacion string

const (
	Ciudad Ubicacion = "ciudad"
	Campo  Ubicacion = "campo"
)

// ParseUbicacion valida la ubicación (insensible a mayúsculas).
func ParseUbicacion(s string) (Ubicacion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Ciudad):
		return Ciudad, nil
	case string(Campo):
		return Campo, nil
	}
	return "", domain.ErrUbicacionInvalida
}

// Franja es la franja de antigüedad profesional.
type Franja string

const (
	Junior Franja = "junior"
	Pleno  Franja = "pleno"
	Senior Franja = "senior"
)

// FranjaPorAntiguedad mapea años de experiencia a franja:
// hasta 5 años junior, de 6 a 15 pleno, más de 15 senior.
func FranjaPorAntiguedad(anios int) Franja {
	switch {
	case anios <= 5:
		return Junior
	case anios <= 15:
		return Pleno
	default:
		return Senior
	}
}
