package reports_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/reports"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// now fijo para que las ventanas relativas sean deterministas.
var testNow = time.Date(2025, time.March, 15, 14, 30, 0, 0, time.Local)

func reportAt(at time.Time) *entity.Report {
	date, clock := entity.NewReportTimestamp(at)
	return &entity.Report{
		Date:               date,
		Time:               clock,
		EmployeeID:         10,
		EmployeeName:       "Ana",
		EmployeeSurname:    "García",
		ProductID:          1,
		ProductTitle:       "Martillo",
		ProductUtility:     entity.UtilityTools,
		ProductCountChange: -1,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventanas de los períodos relativos
// ──────────────────────────────────────────────────────────────────────────────

// La ventana de un período siempre incluye el día de hoy completo y se
// extiende hacia atrás por la longitud del período.
func TestTimeFilter_VentanaDePeriodo(t *testing.T) {
	todayStart := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.Local)
	endOfToday := todayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

	cases := []struct {
		period    reports.RelativePeriod
		wantStart time.Time
	}{
		{reports.PeriodToday, todayStart},
		{reports.PeriodWeek, todayStart.AddDate(0, 0, -7)},
		{reports.PeriodMonth, todayStart.AddDate(0, -1, 0)},
		{reports.PeriodYear, todayStart.AddDate(-1, 0, 0)},
	}
	for _, tc := range cases {
		start, end, ok := reports.ByPeriod(tc.period).Window(testNow)
		require.True(t, ok, "período %s debe producir ventana", tc.period)
		assert.Equal(t, tc.wantStart, start, "inicio del período %s", tc.period)
		assert.Equal(t, endOfToday, end, "el fin siempre es el último instante de hoy")
	}
}

// Una entrada de esta mañana cae en "today"; una de ayer no.
func TestTimeFilter_HoyExcluyeAyer(t *testing.T) {
	q := reports.NewQuery(reports.ByPeriod(reports.PeriodToday), "")

	assert.True(t, q.Matches(reportAt(testNow.Add(-2*time.Hour)), testNow))
	assert.False(t, q.Matches(reportAt(testNow.AddDate(0, 0, -1)), testNow))
}

// El rango explícito incluye ambos extremos completos.
func TestTimeFilter_RangoInclusivo(t *testing.T) {
	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
	q := reports.NewQuery(reports.ByRange(from, to), "")

	lastInstant := time.Date(2025, time.March, 10, 23, 59, 59, 0, time.Local)
	assert.True(t, q.Matches(reportAt(lastInstant), testNow),
		"el último segundo del día final debe entrar en el rango")
	assert.False(t, q.Matches(reportAt(to.AddDate(0, 0, 1)), testNow))
	assert.False(t, q.Matches(reportAt(from.AddDate(0, 0, -1)), testNow))
}

// Sin restricción temporal entra todo.
func TestTimeFilter_SinRestriccion(t *testing.T) {
	q := reports.NewQuery(reports.NoTime(), "")
	assert.True(t, q.Matches(reportAt(testNow.AddDate(-5, 0, 0)), testNow))
}

// ──────────────────────────────────────────────────────────────────────────────
// Precedencia: la búsqueda gana al período rápido
// ──────────────────────────────────────────────────────────────────────────────

// Un texto de búsqueda no vacío descarta el período relativo activo.
func TestNewQuery_BusquedaDescartaPeriodo(t *testing.T) {
	q := reports.NewQuery(reports.ByPeriod(reports.PeriodToday), "martillo")

	assert.Equal(t, reports.TimeNone, q.Time.Kind(),
		"la búsqueda debe limpiar el chip de período")
	old := reportAt(testNow.AddDate(0, 0, -30))
	assert.True(t, q.Matches(old, testNow),
		"con búsqueda activa no debe aplicar la ventana de hoy")
}

// Un rango explícito sí convive con la búsqueda (semántica AND).
func TestNewQuery_RangoConviveConBusqueda(t *testing.T) {
	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
	q := reports.NewQuery(reports.ByRange(from, to), "martillo")

	require.Equal(t, reports.TimeRange, q.Time.Kind())

	inRange := reportAt(time.Date(2025, time.March, 5, 10, 0, 0, 0, time.Local))
	outOfRange := reportAt(time.Date(2025, time.February, 5, 10, 0, 0, 0, time.Local))
	assert.True(t, q.Matches(inRange, testNow))
	assert.False(t, q.Matches(outOfRange, testNow), "ambos ejes deben cumplirse (AND)")
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda de texto libre
// ──────────────────────────────────────────────────────────────────────────────

// La búsqueda recorre los campos denormalizados sin distinguir mayúsculas.
func TestQuery_BusquedaEnCamposDenormalizados(t *testing.T) {
	plate, vName := "ABC123", "Furgoneta"
	r := reportAt(testNow)
	r.ProductDesc = "De bola"
	r.VehiclePlate = &plate
	r.VehicleName = &vName

	for _, needle := range []string{"MARTILLO", "ana", "garcía", "bola", "abc123", "furgo", "herramienta"} {
		q := reports.NewQuery(reports.NoTime(), needle)
		assert.True(t, q.Matches(r, testNow), "debe encontrar %q", needle)
	}

	q := reports.NewQuery(reports.NoTime(), "taladro")
	assert.False(t, q.Matches(r, testNow))
}

// ParsePeriod solo acepta los identificadores conocidos.
func TestParsePeriod(t *testing.T) {
	for _, s := range []string{"today", "week", "month", "year"} {
		_, err := reports.ParsePeriod(s)
		assert.NoError(t, err, "período %q debe ser válido", s)
	}
	_, err := reports.ParsePeriod("decade")
	assert.Error(t, err)
}
