package dto

// CalcularArancelRequest datos del profesional para calcular su arancel.
// Departamento, formación y actividad se validan contra los conjuntos
// vigentes (los dos últimos son dinámicos: los define la tabla de factores).
type CalcularArancelRequest struct {
	Antiguedad   int    `json:"antiguedad" validate:"min=0"`
	Departamento string `json:"departamento" validate:"required"`
	Formacion    string `json:"formacion" validate:"required"`
	Ubicacion    string `json:"ubicacion" validate:"required,oneof=ciudad campo"`
	Actividad    string `json:"actividad" validate:"required"`
}

// ArancelResponse arancel calculado en bolivianos enteros.
type ArancelResponse struct {
	Mensual float64 `json:"mensual"`
	Diario  float64 `json:"diario"`
	Hora    float64 `json:"hora"`
}

// TarifarioResponse arancel más el tarifario completo escalado por el arancel hora.
type TarifarioResponse struct {
	ArancelResponse
	Trabajos []CategoriaResponse `json:"trabajos"`
}

// CategoriaResponse categoría del tarifario (ej: Estructuras).
type CategoriaResponse struct {
	Nombre  string          `json:"nombre"`
	Niveles []NivelResponse `json:"niveles"`
}

// NivelResponse nivel dentro de una categoría.
type NivelResponse struct {
	Nombre    string             `json:"nombre"`
	Elementos []ElementoResponse `json:"elementos"`
}

// ElementoResponse ítem del tarifario con su valor ya escalado.
type ElementoResponse struct {
	Detalle string  `json:"detalle"`
	Unidad  string  `json:"unidad"`
	Valor   float64 `json:"valor"`
}

// OpcionesResponse conjuntos vigentes de formaciones y actividades,
// derivados de las filas form_/actividad_ de incidencias_laborales.
type OpcionesResponse struct {
	Formaciones []string `json:"formaciones"`
	Actividades []string `json:"actividades"`
}
