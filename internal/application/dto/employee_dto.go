package dto

import "time"

// CreateEmployeeRequest alta de empleado.
type CreateEmployeeRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// EmployeeResponse empleado tal como lo ve la API.
type EmployeeResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	CreatedAt time.Time `json:"created_at"`
}
