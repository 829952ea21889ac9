package usecase

import (
	"context"
	"fmt"

	"github.com/sib-bolivia/aranceles-api/internal/application/dto"
	"github.com/sib-bolivia/aranceles-api/internal/domain/arancel"
	"github.com/sib-bolivia/aranceles-api/internal/domain/repository"
)

// ArancelUseCase calcula el arancel profesional y el tarifario escalado.
// Lee la tabla de factores en vivo en cada solicitud: el conjunto de
// formaciones/actividades válidas es el vigente al momento del cálculo.
type ArancelUseCase struct {
	incidencias repository.IncidenciaRepository
	catalogo    repository.CatalogoRepository
}

// NewArancelUseCase construye el caso de uso.
func NewArancelUseCase(incidencias repository.IncidenciaRepository, catalogo repository.CatalogoRepository) *ArancelUseCase {
	return &ArancelUseCase{incidencias: incidencias, catalogo: catalogo}
}

// Calcular devuelve el arancel mensual/diario/hora para los datos del profesional.
func (uc *ArancelUseCase) Calcular(ctx context.Context, in dto.CalcularArancelRequest) (*dto.ArancelResponse, error) {
	tarifa, err := uc.calcularTarifa(ctx, in)
	if err != nil {
		return nil, err
	}
	out := toArancelResponse(tarifa)
	return &out, nil
}

// Tarifario devuelve el arancel más el catálogo completo de trabajos con cada
// valor base multiplicado por el arancel hora. Si el cálculo del arancel
// falla, el catálogo no se consulta.
func (uc *ArancelUseCase) Tarifario(ctx context.Context, in dto.CalcularArancelRequest) (*dto.TarifarioResponse, error) {
	tarifa, err := uc.calcularTarifa(ctx, in)
	if err != nil {
		return nil, err
	}
	categorias, err := uc.catalogo.ListarCategorias(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar catálogo: %w", err)
	}
	escalado := arancel.EscalarCatalogo(categorias, tarifa.Hora)

	trabajos := make([]dto.CategoriaResponse, 0, len(escalado))
	for _, c := range escalado {
		niveles := make([]dto.NivelResponse, 0, len(c.Niveles))
		for _, n := range c.Niveles {
			elementos := make([]dto.ElementoResponse, 0, len(n.Elementos))
			for _, e := range n.Elementos {
				elementos = append(elementos, dto.ElementoResponse{
					Detalle: e.Detalle,
					Unidad:  e.Unidad,
					Valor:   e.Valor.InexactFloat64(),
				})
			}
			niveles = append(niveles, dto.NivelResponse{Nombre: n.Nombre, Elementos: elementos})
		}
		trabajos = append(trabajos, dto.CategoriaResponse{Nombre: c.Nombre, Niveles: niveles})
	}
	return &dto.TarifarioResponse{
		ArancelResponse: toArancelResponse(tarifa),
		Trabajos:        trabajos,
	}, nil
}

func (uc *ArancelUseCase) calcularTarifa(ctx context.Context, in dto.CalcularArancelRequest) (arancel.Tarifa, error) {
	departamento, err := arancel.ParseDepartamento(in.Departamento)
	if err != nil {
		return arancel.Tarifa{}, fmt.Errorf("%w: %q", err, in.Departamento)
	}
	ubicacion, err := arancel.ParseUbicacion(in.Ubicacion)
	if err != nil {
		return arancel.Tarifa{}, fmt.Errorf("%w: %q", err, in.Ubicacion)
	}

	filas, err := uc.incidencias.ListarTodas(ctx)
	if err != nil {
		return arancel.Tarifa{}, fmt.Errorf("cargar incidencias laborales: %w", err)
	}
	tabla := arancel.NuevaTabla(filas)

	return tabla.Calcular(arancel.Solicitud{
		Antiguedad:   in.Antiguedad,
		Departamento: departamento,
		Formacion:    in.Formacion,
		Ubicacion:    ubicacion,
		Actividad:    in.Actividad,
	})
}

func toArancelResponse(t arancel.Tarifa) dto.ArancelResponse {
	return dto.ArancelResponse{
		Mensual: t.Mensual.InexactFloat64(),
		Diario:  t.Diario.InexactFloat64(),
		Hora:    t.Hora.InexactFloat64(),
	}
}
