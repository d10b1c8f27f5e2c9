package reports

import (
	"strings"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// RelativePeriod es una ventana rodante de tiempo interpretada contra "ahora".
type RelativePeriod string

// Períodos rápidos disponibles en la pantalla de reportes.
const (
	PeriodToday RelativePeriod = "today"
	PeriodWeek  RelativePeriod = "week"
	PeriodMonth RelativePeriod = "month"
	PeriodYear  RelativePeriod = "year"
)

// ParsePeriod valida el identificador de período recibido por la API.
func ParsePeriod(s string) (RelativePeriod, error) {
	switch RelativePeriod(s) {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear:
		return RelativePeriod(s), nil
	}
	return "", domain.ErrInvalidInput
}

// TimeFilterKind discrimina la unión de restricciones temporales.
type TimeFilterKind int

// Variantes de la restricción temporal. Hay un único "slot" de tiempo:
// período relativo y rango explícito son modos alternativos, nunca se
// componen entre sí.
const (
	TimeNone TimeFilterKind = iota
	TimePeriod
	TimeRange
)

// TimeFilter es la unión etiquetada None | RelativePeriod | ExplicitRange.
// La exclusión mutua entre variantes es un invariante del tipo: no existen
// campos anulables que un orden de seteo pueda dejar inconsistentes.
type TimeFilter struct {
	kind     TimeFilterKind
	period   RelativePeriod
	from, to time.Time // solo fecha; la hora se normaliza en Window
}

// NoTime es la restricción vacía (sin filtro temporal).
func NoTime() TimeFilter { return TimeFilter{kind: TimeNone} }

// ByPeriod restringe a un período relativo.
func ByPeriod(p RelativePeriod) TimeFilter { return TimeFilter{kind: TimePeriod, period: p} }

// ByRange restringe a un rango explícito de fechas (ambos extremos inclusive).
func ByRange(from, to time.Time) TimeFilter { return TimeFilter{kind: TimeRange, from: from, to: to} }

// Kind devuelve la variante activa.
func (f TimeFilter) Kind() TimeFilterKind { return f.kind }

// Window materializa la restricción como [start, end] contra el instante dado.
// Para un período relativo la ventana siempre incluye el día de hoy completo,
// extendida hacia atrás por la longitud del período:
//
//	[inicioDeHoy − período, inicioDeHoy + 24h − 1ns]
//
// ok=false significa "sin restricción".
func (f TimeFilter) Window(now time.Time) (start, end time.Time, ok bool) {
	switch f.kind {
	case TimePeriod:
		todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end = todayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
		switch f.period {
		case PeriodToday:
			start = todayStart
		case PeriodWeek:
			start = todayStart.AddDate(0, 0, -7)
		case PeriodMonth:
			start = todayStart.AddDate(0, -1, 0)
		case PeriodYear:
			start = todayStart.AddDate(-1, 0, 0)
		default:
			return time.Time{}, time.Time{}, false
		}
		return start, end, true
	case TimeRange:
		start = time.Date(f.from.Year(), f.from.Month(), f.from.Day(), 0, 0, 0, 0, f.from.Location())
		end = time.Date(f.to.Year(), f.to.Month(), f.to.Day(), 0, 0, 0, 0, f.to.Location()).
			AddDate(0, 0, 1).Add(-time.Nanosecond)
		return start, end, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// Query combina los ejes de filtrado del libro de movimientos: una restricción
// temporal y una búsqueda de texto libre, compuestas con semántica AND.
type Query struct {
	Time   TimeFilter
	Search string
}

// NewQuery normaliza la combinación de ejes. La búsqueda tiene prioridad
// sobre los chips de período rápido: un texto no vacío descarta un filtro
// de período relativo (un rango explícito sí convive con la búsqueda).
func NewQuery(t TimeFilter, search string) Query {
	search = strings.TrimSpace(search)
	if search != "" && t.kind == TimePeriod {
		t = NoTime()
	}
	return Query{Time: t, Search: search}
}

// Matches evalúa ambos ejes contra una entrada del libro.
func (q Query) Matches(r *entity.Report, now time.Time) bool {
	if start, end, ok := q.Time.Window(now); ok {
		instant := r.Instant()
		if instant.Before(start) || instant.After(end) {
			return false
		}
	}
	if q.Search != "" && !matchesSearch(r, q.Search) {
		return false
	}
	return true
}

// matchesSearch busca el texto, sin distinguir mayúsculas, en cualquiera de
// los campos denormalizados de la entrada (OR entre campos).
func matchesSearch(r *entity.Report, search string) bool {
	needle := strings.ToLower(search)
	fields := []string{
		r.ProductTitle,
		r.ProductDesc,
		r.ProductUtility.DisplayName(),
		r.EmployeeName,
		r.EmployeeSurname,
	}
	if r.VehicleName != nil {
		fields = append(fields, *r.VehicleName)
	}
	if r.VehiclePlate != nil {
		fields = append(fields, *r.VehiclePlate)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
