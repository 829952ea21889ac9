package arancel_test

import (
	"github.com/shopspring/decimal"

	"github.com/sib-bolivia/aranceles-api/internal/domain/entity"
)

// filasSeedOficial reproduce el seed vigente de incidencias_laborales
// (resolución del directorio nacional, gestión 2024).
func filasSeedOficial() []entity.Incidencia {
	valores := map[string]string{
		"salario_mensual_base": "3300.00",
		"ipc_nacional":         "147.14",

		"junior_ciudad": "1.80",
		"junior_campo":  "2.30",
		"pleno_ciudad":  "3.00",
		"pleno_campo":   "3.50",
		"senior_ciudad": "4.20",
		"senior_campo":  "4.70",

		"form_Licenciatura": "1.00",
		"form_Diplomado":    "1.02",
		"form_Maestría":     "1.06",
		"form_Doctorado":    "1.10",

		"fce_Santa Cruz": "1.20",
		"fce_La Paz":     "1.10",
		"fce_Cochabamba": "1.10",
		"fce_Oruro":      "1.05",
		"fce_Potosí":     "1.00",
		"fce_Tarija":     "1.05",
		"fce_Chuquisaca": "1.05",
		"fce_Beni":       "1.00",
		"fce_Pando":      "1.00",

		"ipc_Chuquisaca": "143.38",
		"ipc_La Paz":     "151.85",
		"ipc_Cochabamba": "147.48",
		"ipc_Oruro":      "152.29",
		"ipc_Potosí":     "153.35",
		"ipc_Tarija":     "146.97",
		"ipc_Santa Cruz": "141.92",
		"ipc_Beni":       "146.91",
		"ipc_Pando":      "146.58",

		"actividad_Diseño, planificación y ejecución":      "1.00",
		"actividad_Supervisión, fiscalización y asesoría":  "1.05",
		"actividad_Avalúo, peritaje y especialidad":        "1.10",
	}
	filas := make([]entity.Incidencia, 0, len(valores))
	for nombre, valor := range valores {
		filas = append(filas, entity.Incidencia{
			Nombre: nombre,
			Valor:  decimal.RequireFromString(valor),
		})
	}
	return filas
}

func decimalInt(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

// filasSeedSin devuelve el seed oficial sin las filas indicadas.
func filasSeedSin(nombres ...string) []entity.Incidencia {
	excluir := make(map[string]bool, len(nombres))
	for _, n := range nombres {
		excluir[n] = true
	}
	var filas []entity.Incidencia
	for _, f := range filasSeedOficial() {
		if !excluir[f.Nombre] {
			filas = append(filas, f)
		}
	}
	return filas
}
