package usecase

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/warehouse"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El conteo en mano solo se
// modifica aquí por edición administrativa directa; el flujo normal pasa por
// el commit del borrador.
type ProductUseCase struct {
	repo    repository.ProductRepository
	pending *warehouse.PendingLedger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, pending *warehouse.PendingLedger) *ProductUseCase {
	return &ProductUseCase{repo: repo, pending: pending}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	utility := entity.Utility(in.Utility)
	if in.Title == "" || !utility.IsValid() || in.Count < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		Title:       in.Title,
		Description: in.Description,
		Utility:     utility,
		Count:       in.Count,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update edición administrativa directa. Un cambio de título/descripción no
// reescribe el histórico: las entradas del libro conservan los valores
// denormalizados al momento de cada commit.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Title = *in.Title
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Utility != nil {
		utility := entity.Utility(*in.Utility)
		if !utility.IsValid() {
			return nil, domain.ErrInvalidInput
		}
		product.Utility = utility
	}
	if in.Count != nil {
		if *in.Count < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Count = *in.Count
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos según el filtro, con el conteo pendiente del borrador
// superpuesto al conteo del catálogo (lo que ve el usuario mientras acumula
// +1/-1 sin guardar).
func (uc *ProductUseCase) List(filter ProductFilter) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if !filter.Matches(p) {
			continue
		}
		resp := toProductResponse(p)
		if change, ok := uc.pending.Get(p.ID); ok {
			resp.Count = change.Proposed
		}
		items = append(items, *resp)
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un producto por ID. Las entradas históricas que lo
// referencian permanecen intactas (datos denormalizados).
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Utility:      string(p.Utility),
		UtilityLabel: p.Utility.DisplayName(),
		Count:        p.Count,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
