package warehouse

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// CommitUseCase es el único escritor que convierte un lote de cambios
// pendientes en estado durable más histórico. Cada producto del lote se
// confirma de forma independiente dentro de su propia transacción; un
// producto que ya no existe se omite sin abortar el resto del lote.
type CommitUseCase struct {
	txRunner  TxRunner
	pending   *PendingLedger
	employees repository.EmployeeRepository
	vehicles  repository.VehicleRepository
	notifier  LedgerNotifier
}

// NewCommitUseCase construye el caso de uso.
func NewCommitUseCase(
	txRunner TxRunner,
	pending *PendingLedger,
	employees repository.EmployeeRepository,
	vehicles repository.VehicleRepository,
	notifier LedgerNotifier,
) *CommitUseCase {
	return &CommitUseCase{
		txRunner:  txRunner,
		pending:   pending,
		employees: employees,
		vehicles:  vehicles,
		notifier:  notifier,
	}
}

// CommitResult resume el resultado del lote: qué productos se confirmaron y
// cuáles se omitieron por ya no existir en el catálogo.
type CommitResult struct {
	BatchID   string
	Committed []int64
	Skipped   []int64
}

// Commit confirma todos los cambios pendientes a nombre del empleado indicado,
// con un vehículo destino opcional.
//
// Por cada cambio: relee el producto del catálogo (no el baseline obsoleto)
// para denormalizar título/descripción/categoría frescos, fija el conteo en la
// cantidad propuesta y agrega una entrada al libro de movimientos con el delta
// firmado. Conteo y entrada van en la misma transacción.
//
// Al terminar el lote se limpia el borrador y se notifica al stream. Si el
// almacenamiento falla a mitad del lote, el borrador queda intacto para poder
// reintentar.
func (uc *CommitUseCase) Commit(ctx context.Context, employeeID int64, vehicleID *int64) (*CommitResult, error) {
	changes := uc.pending.Snapshot()
	if len(changes) == 0 {
		return nil, domain.ErrNothingPending
	}

	employee, err := uc.employees.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeRequired
	}

	// El vehículo es opcional; si el ID ya no resuelve se registra sin vehículo.
	var vehicle *entity.Vehicle
	if vehicleID != nil {
		vehicle, err = uc.vehicles.GetByID(*vehicleID)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	date, clock := entity.NewReportTimestamp(now)
	result := &CommitResult{BatchID: uuid.New().String()}

	for _, change := range changes {
		change := change
		skipped := false

		err := uc.txRunner.Run(ctx, func(
			productRepo repository.ProductRepository,
			reportRepo repository.ReportRepository,
		) error {
			product, err := productRepo.GetByID(change.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				// Borrado concurrente por un admin: se omite este ítem.
				skipped = true
				return nil
			}
			if err := productRepo.UpdateCount(product.ID, change.Proposed); err != nil {
				return err
			}

			report := &entity.Report{
				Date:               date,
				Time:               clock,
				EmployeeID:         employee.ID,
				EmployeeName:       employee.Name,
				EmployeeSurname:    employee.Surname,
				ProductID:          product.ID,
				ProductTitle:       product.Title,
				ProductDesc:        product.Description,
				ProductUtility:     product.Utility,
				ProductCountChange: change.Delta,
			}
			if vehicle != nil {
				report.VehicleID = &vehicle.ID
				report.VehiclePlate = &vehicle.Plate
				report.VehicleName = &vehicle.Name
			}
			return reportRepo.Create(report)
		})
		if err != nil {
			return result, err
		}

		if skipped {
			result.Skipped = append(result.Skipped, change.ProductID)
		} else {
			result.Committed = append(result.Committed, change.ProductID)
		}
	}

	uc.pending.Clear()
	if uc.notifier != nil {
		uc.notifier.Notify()
	}
	return result, nil
}
