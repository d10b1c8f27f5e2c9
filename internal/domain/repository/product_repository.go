package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateCount actualiza solo el stock en mano (lo usa el motor de commit).
	UpdateCount(id int64, count int) error
	ListAll() ([]*entity.Product, error)
	Delete(id int64) error
}
