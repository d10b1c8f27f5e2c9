package warehouse

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Cada ítem del commit (actualización de conteo
// + su entrada de reporte) es una unidad: o entran ambos o no entra ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		reportRepo repository.ReportRepository,
	) error) error
}

// LedgerNotifier avisa a los suscriptores del stream de reportes que el libro
// de movimientos cambió, para que las vistas derivadas se recalculen.
type LedgerNotifier interface {
	Notify()
}
