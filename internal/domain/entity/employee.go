package entity

import "time"

// Employee es el dato maestro de empleado que se selecciona antes de retirar
// o devolver material. Name y Surname se denormalizan en cada reporte.
type Employee struct {
	ID        int64
	Name      string
	Surname   string
	CreatedAt time.Time
}
