package dto

import "time"

// CreateVehicleRequest alta de vehículo destino.
type CreateVehicleRequest struct {
	Plate string `json:"plate"`
	Name  string `json:"name"`
}

// VehicleResponse vehículo tal como lo ve la API.
type VehicleResponse struct {
	ID        int64     `json:"id"`
	Plate     string    `json:"plate"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
