package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id int64) (*entity.Employee, error)
	ListAll() ([]*entity.Employee, error)
	Delete(id int64) error
}
