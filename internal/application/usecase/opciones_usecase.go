package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/sib-bolivia/aranceles-api/internal/application/dto"
	"github.com/sib-bolivia/aranceles-api/internal/domain/arancel"
	"github.com/sib-bolivia/aranceles-api/internal/domain/repository"
)

// TTLOpcionesPorDefecto acota la vigencia del caché de opciones: las filas
// form_/actividad_ cambian solo por resolución administrativa, así que una
// hora de desfase máximo es aceptable para las listas de selección.
const TTLOpcionesPorDefecto = time.Hour

// OpcionesUseCase enumera las formaciones y actividades vigentes a través de
// un caché read-through con TTL explícito. El cálculo del arancel NO pasa por
// este caché: siempre lee la tabla en vivo.
type OpcionesUseCase struct {
	incidencias repository.IncidenciaRepository
	ttl         time.Duration
	ahora       func() time.Time

	mu        sync.RWMutex
	expiraEn  time.Time
	cacheadas *dto.OpcionesResponse
}

// NewOpcionesUseCase construye el caso de uso. Un ttl <= 0 usa TTLOpcionesPorDefecto.
func NewOpcionesUseCase(incidencias repository.IncidenciaRepository, ttl time.Duration) *OpcionesUseCase {
	if ttl <= 0 {
		ttl = TTLOpcionesPorDefecto
	}
	return &OpcionesUseCase{
		incidencias: incidencias,
		ttl:         ttl,
		ahora:       time.Now,
	}
}

// Listar devuelve los conjuntos vigentes, sirviendo del caché si no expiró.
func (uc *OpcionesUseCase) Listar(ctx context.Context) (*dto.OpcionesResponse, error) {
	uc.mu.RLock()
	if uc.cacheadas != nil && uc.ahora().Before(uc.expiraEn) {
		out := *uc.cacheadas
		uc.mu.RUnlock()
		return &out, nil
	}
	uc.mu.RUnlock()

	filas, err := uc.incidencias.ListarTodas(ctx)
	if err != nil {
		return nil, err
	}
	tabla := arancel.NuevaTabla(filas)
	opciones := &dto.OpcionesResponse{
		Formaciones: tabla.Formaciones(),
		Actividades: tabla.Actividades(),
	}

	uc.mu.Lock()
	uc.cacheadas = opciones
	uc.expiraEn = uc.ahora().Add(uc.ttl)
	uc.mu.Unlock()

	out := *opciones
	return &out, nil
}

// Invalidar descarta el caché; la próxima consulta releerá la tabla.
func (uc *OpcionesUseCase) Invalidar() {
	uc.mu.Lock()
	uc.cacheadas = nil
	uc.mu.Unlock()
}
