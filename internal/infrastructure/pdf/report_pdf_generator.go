// Package pdf genera la versión imprimible del libro de movimientos usando
// Maroto v2: cabecera con título y fecha de generación, tabla de entradas y
// pie con el total de filas.
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorGreen   = &props.Color{Red: 20, Green: 110, Blue: 50}
)

// ReportPDFGenerator genera el PDF del listado de movimientos.
type ReportPDFGenerator struct{}

// NewReportPDFGenerator construye el generador.
func NewReportPDFGenerator() *ReportPDFGenerator { return &ReportPDFGenerator{} }

// GenerateReportListPDF genera el documento y devuelve sus bytes. Las entradas
// se imprimen en el orden recibido (más recientes primero).
func (g *ReportPDFGenerator) GenerateReportListPDF(reports []*entity.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Movimientos de almacén", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(time.Now(), len(reports)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range reports {
		m.AddRows(detailRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(reports)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación + total (der).
func headerRow(at time.Time, total int) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("MOVIMIENTOS DE ALMACÉN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Libro de retiros y devoluciones de material", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d entradas", total), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de entradas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Empleado", 3, align.Left),
		h("Producto", 3, align.Left),
		h("Cant.", 1, align.Center),
		h("Vehículo", 3, align.Left),
	)
}

// detailRow: una fila por entrada. El delta lleva signo explícito y color:
// rojo retiro, verde devolución.
func detailRow(r *entity.Report) core.Row {
	deltaColor := colorRed
	delta := strconv.Itoa(r.ProductCountChange)
	if r.ProductCountChange > 0 {
		deltaColor = colorGreen
		delta = "+" + delta
	}

	vehicle := "—"
	if r.VehiclePlate != nil {
		vehicle = *r.VehiclePlate
		if r.VehicleName != nil && *r.VehicleName != "" {
			vehicle += " · " + *r.VehicleName
		}
	}

	return row.New(7).Add(
		col.New(2).Add(text.New(
			r.Date+" "+r.Time,
			props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(3).Add(text.New(
			r.EmployeeName+" "+r.EmployeeSurname,
			props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(3).Add(text.New(
			r.ProductTitle,
			props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(1).Add(text.New(
			delta,
			props.Text{Style: fontstyle.Bold, Size: 7.5, Align: align.Center, Top: 1, Color: deltaColor},
		)),
		col.New(3).Add(text.New(
			vehicle,
			props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
		)),
	)
}

// footerRow: leyenda de la convención de signo.
func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(
				fmt.Sprintf("Total: %d movimientos. Convención: negativo = material retirado, positivo = material devuelto.", total),
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		),
	)
}
