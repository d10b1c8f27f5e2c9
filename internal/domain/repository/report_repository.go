package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ReportRepository define el puerto de persistencia del libro de movimientos.
//
// El contrato es append-only: no existe Update ni Delete por ID. La
// inmutabilidad de las entradas se garantiza por ausencia de operación,
// no por chequeos en runtime. DeleteAll existe solo como limpieza
// administrativa masiva.
type ReportRepository interface {
	// Create persiste una entrada y le asigna el siguiente ID secuencial.
	Create(report *entity.Report) error
	// ListAll devuelve todas las entradas, más recientes primero (ORDER BY id DESC).
	ListAll() ([]*entity.Report, error)
	DeleteAll() error
}
