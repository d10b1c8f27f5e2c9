// Package export escribe el libro de movimientos a archivos descargables
// (CSV compatible con el formato histórico de la app de escritorio).
package export

import (
	"strconv"
	"strings"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// csvHeader columnas fijas del CSV, en el orden histórico. Cambiar el orden
// rompería las hojas de cálculo ya montadas sobre exportaciones previas.
var csvHeader = []string{
	"id", "date", "time",
	"employeeId", "employeeName", "employeeSurname",
	"productId", "productTitle", "productDesc", "productUtility",
	"productCountChange",
	"vehiclePlate", "vehicleName",
}

// BuildCSV serializa las entradas al formato de exportación: separador punto y
// coma, todos los campos entre comillas dobles, comillas internas duplicadas.
// encoding/csv no sirve aquí: no permite forzar comillas en todos los campos,
// y el formato existente las exige.
func BuildCSV(reports []*entity.Report) string {
	var b strings.Builder
	writeRow(&b, csvHeader)
	for _, r := range reports {
		writeRow(&b, []string{
			strconv.FormatInt(r.ID, 10),
			r.Date,
			r.Time,
			strconv.FormatInt(r.EmployeeID, 10),
			r.EmployeeName,
			r.EmployeeSurname,
			strconv.FormatInt(r.ProductID, 10),
			r.ProductTitle,
			r.ProductDesc,
			r.ProductUtility.DisplayName(),
			strconv.Itoa(r.ProductCountChange),
			deref(r.VehiclePlate),
			deref(r.VehicleName),
		})
	}
	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ParseCSVRow deshace el formato de una línea exportada (para verificación y
// herramientas de importación). Devuelve los campos sin comillas.
func ParseCSVRow(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case inQuotes && c == '"' && i+1 < len(line) && line[i+1] == '"':
			cur.WriteByte('"')
			i++
		case c == '"':
			inQuotes = !inQuotes
		case c == ';' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cur.String())
	return fields
}
