package repository

import (
	"context"

	"github.com/sib-bolivia/aranceles-api/internal/domain/entity"
)

// IncidenciaRepository define el puerto de lectura de incidencias_laborales (DIP).
// La tabla es de solo lectura para el calculador: se siembra una vez por
// resolución administrativa y el servicio nunca la muta.
type IncidenciaRepository interface {
	// ListarTodas devuelve todas las filas de factores vigentes.
	ListarTodas(ctx context.Context) ([]entity.Incidencia, error)
}
