package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// VehicleRepository define el puerto de persistencia para Vehicle.
type VehicleRepository interface {
	Create(vehicle *entity.Vehicle) error
	GetByID(id int64) (*entity.Vehicle, error)
	GetByPlate(plate string) (*entity.Vehicle, error)
	ListAll() ([]*entity.Vehicle, error)
	Delete(id int64) error
}
