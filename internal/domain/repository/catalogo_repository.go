package repository

import (
	"context"

	"github.com/sib-bolivia/aranceles-api/internal/domain/entity"
)

// CatalogoRepository define el puerto de lectura del tarifario de trabajos.
type CatalogoRepository interface {
	// ListarCategorias devuelve el catálogo completo anidado
	// (categoría → nivel → elemento) con los valores base sin escalar.
	// Catálogo vacío devuelve lista vacía, no error.
	ListarCategorias(ctx context.Context) ([]entity.Categoria, error)
}
