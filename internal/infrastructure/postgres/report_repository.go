package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación del puerto ReportRepository sobre PostgreSQL
// (usable con pool o tx). Solo INSERT, SELECT y el DELETE masivo
// administrativo: el libro de movimientos es append-only por contrato.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Create persiste una entrada del libro y asigna el siguiente ID secuencial.
func (r *ReportRepo) Create(report *entity.Report) error {
	query := `
		INSERT INTO reports (
			date, time, employee_id, employee_name, employee_surname,
			product_id, product_title, product_desc, product_utility,
			product_count_change, vehicle_id, vehicle_plate, vehicle_name
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		report.Date, report.Time, report.EmployeeID, report.EmployeeName, report.EmployeeSurname,
		report.ProductID, report.ProductTitle, report.ProductDesc, report.ProductUtility,
		report.ProductCountChange, report.VehicleID, report.VehiclePlate, report.VehicleName,
	).Scan(&report.ID)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// ListAll devuelve todo el libro, más recientes primero (ORDER BY id DESC:
// las entradas solo se agregan en orden de commit, así que el ID es un buen
// proxy del orden cronológico).
func (r *ReportRepo) ListAll() ([]*entity.Report, error) {
	query := `
		SELECT id, date, time, employee_id, employee_name, employee_surname,
		       product_id, product_title, product_desc, product_utility,
		       product_count_change, vehicle_id, vehicle_plate, vehicle_name
		FROM reports ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()
	var list []*entity.Report
	for rows.Next() {
		var rep entity.Report
		if err := rows.Scan(
			&rep.ID, &rep.Date, &rep.Time, &rep.EmployeeID, &rep.EmployeeName, &rep.EmployeeSurname,
			&rep.ProductID, &rep.ProductTitle, &rep.ProductDesc, &rep.ProductUtility,
			&rep.ProductCountChange, &rep.VehicleID, &rep.VehiclePlate, &rep.VehicleName,
		); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}

// DeleteAll borra todo el libro (limpieza administrativa).
func (r *ReportRepo) DeleteAll() error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM reports`)
	if err != nil {
		return fmt.Errorf("delete reports: %w", err)
	}
	return nil
}
