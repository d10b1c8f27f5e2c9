package warehouse_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/warehouse"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos del commit
// ──────────────────────────────────────────────────────────────────────────────

type fakeEmployeeRepo struct {
	employees map[int64]*entity.Employee
}

var _ repository.EmployeeRepository = (*fakeEmployeeRepo)(nil)

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error { r.employees[e.ID] = e; return nil }
func (r *fakeEmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, nil
	}
	return e, nil
}
func (r *fakeEmployeeRepo) ListAll() ([]*entity.Employee, error) { return nil, nil }
func (r *fakeEmployeeRepo) Delete(id int64) error                { delete(r.employees, id); return nil }

type fakeVehicleRepo struct {
	vehicles map[int64]*entity.Vehicle
}

var _ repository.VehicleRepository = (*fakeVehicleRepo)(nil)

func (r *fakeVehicleRepo) Create(v *entity.Vehicle) error { r.vehicles[v.ID] = v; return nil }
func (r *fakeVehicleRepo) GetByID(id int64) (*entity.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, nil
	}
	return v, nil
}
func (r *fakeVehicleRepo) GetByPlate(plate string) (*entity.Vehicle, error) { return nil, nil }
func (r *fakeVehicleRepo) ListAll() ([]*entity.Vehicle, error)              { return nil, nil }
func (r *fakeVehicleRepo) Delete(id int64) error                            { return nil }

// fakeReportRepo acumula entradas del libro en memoria.
type fakeReportRepo struct {
	reports []*entity.Report
	nextID  int64
	failOn  int // si > 0, Create falla en la n-ésima llamada
	calls   int
}

var _ repository.ReportRepository = (*fakeReportRepo)(nil)

func (r *fakeReportRepo) Create(report *entity.Report) error {
	r.calls++
	if r.failOn > 0 && r.calls == r.failOn {
		return errors.New("storage caído")
	}
	r.nextID++
	report.ID = r.nextID
	r.reports = append(r.reports, report)
	return nil
}

func (r *fakeReportRepo) ListAll() ([]*entity.Report, error) { return r.reports, nil }
func (r *fakeReportRepo) DeleteAll() error                   { r.reports = nil; return nil }

// fakeTxRunner pasa los fakes directamente; la atomicidad real la prueba la
// integración con PostgreSQL, aquí interesa la semántica del lote.
type fakeTxRunner struct {
	products *fakeProductRepo
	reports  *fakeReportRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	reportRepo repository.ReportRepository,
) error) error {
	return fn(r.products, r.reports)
}

type fakeNotifier struct{ notified int }

func (n *fakeNotifier) Notify() { n.notified++ }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type commitFixture struct {
	products *fakeProductRepo
	reports  *fakeReportRepo
	pending  *warehouse.PendingLedger
	notifier *fakeNotifier
	uc       *warehouse.CommitUseCase
}

func newCommitFixture(products ...*entity.Product) *commitFixture {
	productRepo := newFakeProductRepo(products...)
	reportRepo := &fakeReportRepo{}
	pending := warehouse.NewPendingLedger(productRepo)
	notifier := &fakeNotifier{}
	employees := &fakeEmployeeRepo{employees: map[int64]*entity.Employee{
		10: {ID: 10, Name: "Ana", Surname: "García"},
	}}
	vehicles := &fakeVehicleRepo{vehicles: map[int64]*entity.Vehicle{
		20: {ID: 20, Plate: "ABC123", Name: "Furgoneta"},
	}}
	uc := warehouse.NewCommitUseCase(
		&fakeTxRunner{products: productRepo, reports: reportRepo},
		pending, employees, vehicles, notifier,
	)
	return &commitFixture{
		products: productRepo,
		reports:  reportRepo,
		pending:  pending,
		notifier: notifier,
		uc:       uc,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Commit
// ──────────────────────────────────────────────────────────────────────────────

// El commit aplica baseline+delta al catálogo, agrega una entrada por producto
// y limpia el borrador.
func TestCommit_AplicaCambiosYLimpiaBorrador(t *testing.T) {
	f := newCommitFixture(
		&entity.Product{ID: 1, Title: "Martillo", Utility: entity.UtilityTools, Count: 10},
		&entity.Product{ID: 2, Title: "Casco", Utility: entity.UtilityPPE, Count: 4},
	)
	_, err := f.pending.Decrease(1)
	require.NoError(t, err)
	_, err = f.pending.Decrease(1)
	require.NoError(t, err)
	_, err = f.pending.Increase(2)
	require.NoError(t, err)

	result, err := f.uc.Commit(context.Background(), 10, nil)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.BatchID)
	assert.ElementsMatch(t, []int64{1, 2}, result.Committed)
	assert.Empty(t, result.Skipped)

	assert.Equal(t, 8, f.products.products[1].Count, "martillo: 10 - 2")
	assert.Equal(t, 5, f.products.products[2].Count, "casco: 4 + 1")

	require.Len(t, f.reports.reports, 2, "una entrada del libro por producto")
	assert.Empty(t, f.pending.Snapshot(), "el borrador debe quedar limpio tras el commit")
	assert.Equal(t, 1, f.notifier.notified, "el stream debe recibir una notificación")
}

// Las entradas del libro llevan los datos denormalizados y el delta firmado.
func TestCommit_DenormalizaDatosEnElLibro(t *testing.T) {
	f := newCommitFixture(
		&entity.Product{ID: 1, Title: "Martillo", Description: "De bola", Utility: entity.UtilityTools, Count: 10},
	)
	_, err := f.pending.Decrease(1)
	require.NoError(t, err)

	vehicleID := int64(20)
	_, err = f.uc.Commit(context.Background(), 10, &vehicleID)
	require.NoError(t, err)

	require.Len(t, f.reports.reports, 1)
	r := f.reports.reports[0]
	assert.Equal(t, "Ana", r.EmployeeName)
	assert.Equal(t, "García", r.EmployeeSurname)
	assert.Equal(t, "Martillo", r.ProductTitle)
	assert.Equal(t, "De bola", r.ProductDesc)
	assert.Equal(t, entity.UtilityTools, r.ProductUtility)
	assert.Equal(t, -1, r.ProductCountChange, "retiro = delta negativo")
	require.NotNil(t, r.VehiclePlate)
	assert.Equal(t, "ABC123", *r.VehiclePlate)
	assert.NotEmpty(t, r.Date)
	assert.NotEmpty(t, r.Time)
}

// Un producto borrado entre la propuesta y el commit se omite sin abortar el
// resto del lote.
func TestCommit_OmiteProductoBorrado(t *testing.T) {
	f := newCommitFixture(
		&entity.Product{ID: 1, Title: "Martillo", Utility: entity.UtilityTools, Count: 10},
		&entity.Product{ID: 2, Title: "Casco", Utility: entity.UtilityPPE, Count: 4},
	)
	_, err := f.pending.Decrease(1)
	require.NoError(t, err)
	_, err = f.pending.Decrease(2)
	require.NoError(t, err)

	// Borrado concurrente por un admin.
	require.NoError(t, f.products.Delete(1))

	result, err := f.uc.Commit(context.Background(), 10, nil)
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, result.Skipped)
	assert.Equal(t, []int64{2}, result.Committed)
	require.Len(t, f.reports.reports, 1, "el producto borrado no deja entrada en el libro")
	assert.Empty(t, f.pending.Snapshot())
}

// Sin cambios pendientes no hay nada que confirmar.
func TestCommit_SinCambiosPendientes(t *testing.T) {
	f := newCommitFixture()

	_, err := f.uc.Commit(context.Background(), 10, nil)
	assert.ErrorIs(t, err, domain.ErrNothingPending)
}

// El empleado es obligatorio: un ID que no resuelve rechaza el lote completo.
func TestCommit_EmpleadoInexistente(t *testing.T) {
	f := newCommitFixture(
		&entity.Product{ID: 1, Title: "Martillo", Utility: entity.UtilityTools, Count: 10},
	)
	_, err := f.pending.Decrease(1)
	require.NoError(t, err)

	_, err = f.uc.Commit(context.Background(), 99, nil)
	assert.ErrorIs(t, err, domain.ErrEmployeeRequired)
	assert.NotEmpty(t, f.pending.Snapshot(), "el borrador debe sobrevivir al rechazo")
}

// Si el almacenamiento falla a mitad del lote, el borrador queda intacto para
// reintentar.
func TestCommit_FalloDeStorageConservaBorrador(t *testing.T) {
	f := newCommitFixture(
		&entity.Product{ID: 1, Title: "Martillo", Utility: entity.UtilityTools, Count: 10},
		&entity.Product{ID: 2, Title: "Casco", Utility: entity.UtilityPPE, Count: 4},
	)
	f.reports.failOn = 2

	_, err := f.pending.Decrease(1)
	require.NoError(t, err)
	_, err = f.pending.Decrease(2)
	require.NoError(t, err)

	_, err = f.uc.Commit(context.Background(), 10, nil)
	require.Error(t, err)

	assert.Len(t, f.pending.Snapshot(), 2, "el borrador no se limpia si el storage falló")
	assert.Zero(t, f.notifier.notified, "no debe notificarse un lote fallido")
}
