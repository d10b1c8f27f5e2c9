package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// VehicleUseCase CRUD de vehículos destino. La placa es única.
type VehicleUseCase struct {
	repo repository.VehicleRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(repo repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

// Create crea un vehículo. La placa se normaliza a mayúsculas.
func (uc *VehicleUseCase) Create(in dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	plate := strings.ToUpper(strings.TrimSpace(in.Plate))
	if plate == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByPlate(plate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	vehicle := &entity.Vehicle{
		Plate:     plate,
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(vehicle); err != nil {
		return nil, err
	}
	return toVehicleResponse(vehicle), nil
}

// List lista todos los vehículos.
func (uc *VehicleUseCase) List() ([]dto.VehicleResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVehicleResponse(v))
	}
	return items, nil
}

// Delete elimina un vehículo. La placa sigue legible en el histórico.
func (uc *VehicleUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toVehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
	if v == nil {
		return nil
	}
	return &dto.VehicleResponse{
		ID:        v.ID,
		Plate:     v.Plate,
		Name:      v.Name,
		CreatedAt: v.CreatedAt,
	}
}
