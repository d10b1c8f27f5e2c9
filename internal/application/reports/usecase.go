// Package reports compone los filtros sobre el libro de movimientos y deriva
// la vista agregada de material en mano por empleado.
package reports

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ReportUseCase consulta el libro de movimientos. Solo lectura, salvo la
// limpieza administrativa masiva.
type ReportUseCase struct {
	repo   repository.ReportRepository
	stream *Stream
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository, stream *Stream) *ReportUseCase {
	return &ReportUseCase{repo: repo, stream: stream}
}

// List devuelve las entradas que satisfacen la consulta, en orden del libro
// (más recientes primero). El volumen es el de un único almacén, así que el
// filtrado se hace en memoria sobre el snapshot completo.
func (uc *ReportUseCase) List(q Query) ([]*entity.Report, error) {
	all, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]*entity.Report, 0, len(all))
	for _, r := range all {
		if q.Matches(r, now) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Inventory deriva el material en mano por empleado a partir del histórico
// completo (sin filtros: el agregado pliega toda la historia).
func (uc *ReportUseCase) Inventory() ([]InventoryItem, error) {
	all, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return HeldInventory(all), nil
}

// ClearAll borra todo el libro (operación administrativa) y notifica el cambio.
func (uc *ReportUseCase) ClearAll() error {
	if err := uc.repo.DeleteAll(); err != nil {
		return err
	}
	uc.stream.Notify()
	return nil
}

// WaitForChange bloquea hasta que el libro cambie o el contexto expire.
// Devuelve true si hubo un cambio. Lo usa el long-poll de la API para que
// los clientes reaccionen a escrituras sin sondear.
func (uc *ReportUseCase) WaitForChange(ctx context.Context) bool {
	ch, cancel := uc.stream.Subscribe()
	defer cancel()

	select {
	case <-ch:
		return true
	case <-ctx.Done():
		return false
	}
}
