package entity

import "time"

// Formatos con los que se persisten la fecha y la hora del reporte
// (columnas separadas, igual que el esquema original de escritorio).
const (
	ReportDateLayout = "2006-01-02"
	ReportTimeLayout = "15:04:05"
)

// Report es una entrada inmutable del libro de movimientos: quién movió qué,
// cuándo, cuánto y hacia qué vehículo. Los datos de empleado, producto y
// vehículo se copian por valor al momento del commit, de modo que el histórico
// sigue siendo legible aunque el dato maestro se renombre o se elimine.
//
// Convención de signo de ProductCountChange: negativo = material retirado del
// almacén, positivo = material devuelto. Es la única convención del sistema.
type Report struct {
	ID                 int64
	Date               string // ReportDateLayout
	Time               string // ReportTimeLayout
	EmployeeID         int64
	EmployeeName       string
	EmployeeSurname    string
	ProductID          int64
	ProductTitle       string
	ProductDesc        string
	ProductUtility     Utility
	ProductCountChange int
	VehicleID          *int64
	VehiclePlate       *string
	VehicleName        *string
}

// Instant reconstruye fecha y hora en un único instante para comparaciones.
// Una entrada con campos corruptos cae en el instante cero (queda fuera de
// cualquier ventana temporal).
func (r Report) Instant() time.Time {
	t, err := time.ParseInLocation(ReportDateLayout+" "+ReportTimeLayout, r.Date+" "+r.Time, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// NewReportTimestamp descompone un instante en las columnas date y time.
func NewReportTimestamp(at time.Time) (date, clock string) {
	return at.Format(ReportDateLayout), at.Format(ReportTimeLayout)
}
