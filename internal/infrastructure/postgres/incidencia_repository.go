package postgres

import (
	"context"
	"fmt"

	"github.com/sib-bolivia/aranceles-api/internal/domain/entity"
	"github.com/sib-bolivia/aranceles-api/internal/domain/repository"
)

var _ repository.IncidenciaRepository = (*IncidenciaRepo)(nil)

// IncidenciaRepo implementación del puerto IncidenciaRepository sobre PostgreSQL.
type IncidenciaRepo struct {
	q Querier
}

// NewIncidenciaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIncidenciaRepository(q Querier) *IncidenciaRepo {
	return &IncidenciaRepo{q: q}
}

// ListarTodas devuelve todas las filas de incidencias_laborales.
func (r *IncidenciaRepo) ListarTodas(ctx context.Context) ([]entity.Incidencia, error) {
	query := `SELECT nombre, valor FROM incidencias_laborales ORDER BY nombre`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar incidencias: %w", err)
	}
	defer rows.Close()

	var filas []entity.Incidencia
	for rows.Next() {
		var f entity.Incidencia
		if err := rows.Scan(&f.Nombre, &f.Valor); err != nil {
			return nil, fmt.Errorf("scan incidencia: %w", err)
		}
		filas = append(filas, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar incidencias: %w", err)
	}
	return filas, nil
}
