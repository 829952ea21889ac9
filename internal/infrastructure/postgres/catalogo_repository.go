package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sib-bolivia/aranceles-api/internal/domain/entity"
	"github.com/sib-bolivia/aranceles-api/internal/domain/repository"
)

var _ repository.CatalogoRepository = (*CatalogoRepo)(nil)

// CatalogoRepo implementación del puerto CatalogoRepository sobre PostgreSQL.
type CatalogoRepo struct {
	q Querier
}

// NewCatalogoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogoRepository(q Querier) *CatalogoRepo {
	return &CatalogoRepo{q: q}
}

// ListarCategorias arma el catálogo anidado en una sola consulta.
// LEFT JOIN para no perder categorías o niveles todavía sin elementos.
func (r *CatalogoRepo) ListarCategorias(ctx context.Context) ([]entity.Categoria, error) {
	query := `
		SELECT c.id, c.nombre,
		       n.id, n.nombre,
		       e.id, e.detalle, e.unidad, e.valor
		FROM categorias c
		LEFT JOIN niveles n ON n.categoria_id = c.id
		LEFT JOIN elementos e ON e.nivel_id = n.id
		ORDER BY c.nombre, n.nombre, e.detalle`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar catálogo: %w", err)
	}
	defer rows.Close()

	categorias := make([]entity.Categoria, 0)
	idxCategoria := make(map[string]int)
	idxNivel := make(map[string]int)

	for rows.Next() {
		var (
			catID, catNombre        string
			nivID, nivNombre        *string
			elemID, detalle, unidad *string
			valor                   *decimal.Decimal
		)
		if err := rows.Scan(&catID, &catNombre, &nivID, &nivNombre, &elemID, &detalle, &unidad, &valor); err != nil {
			return nil, fmt.Errorf("scan catálogo: %w", err)
		}

		ci, ok := idxCategoria[catID]
		if !ok {
			categorias = append(categorias, entity.Categoria{ID: catID, Nombre: catNombre})
			ci = len(categorias) - 1
			idxCategoria[catID] = ci
		}
		if nivID == nil {
			continue
		}
		ni, ok := idxNivel[*nivID]
		if !ok {
			categorias[ci].Niveles = append(categorias[ci].Niveles, entity.Nivel{ID: *nivID, Nombre: *nivNombre})
			ni = len(categorias[ci].Niveles) - 1
			idxNivel[*nivID] = ni
		}
		if elemID == nil {
			continue
		}
		categorias[ci].Niveles[ni].Elementos = append(categorias[ci].Niveles[ni].Elementos, entity.Elemento{
			ID:      *elemID,
			Detalle: *detalle,
			Unidad:  *unidad,
			Valor:   *valor,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar catálogo: %w", err)
	}
	return categorias, nil
}
