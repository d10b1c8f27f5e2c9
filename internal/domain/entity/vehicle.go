package entity

import "time"

// Vehicle es el vehículo destino opcional de un retiro de material.
// La placa es clave natural única; el ID autoincremental es la clave primaria
// (una versión anterior del esquema usaba la placa como clave primaria).
type Vehicle struct {
	ID        int64
	Plate     string
	Name      string
	CreatedAt time.Time
}
