package dto

import "time"

// CreateProductRequest alta de producto por el administrador.
type CreateProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Utility     string `json:"utility"`
	Count       int    `json:"count"`
}

// UpdateProductRequest edición administrativa de producto. Campos nil no se tocan.
type UpdateProductRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Utility     *string `json:"utility"`
	Count       *int    `json:"count"`
}

// ProductResponse producto tal como lo ve la API.
type ProductResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Utility      string    `json:"utility"`
	UtilityLabel string    `json:"utility_label"`
	Count        int       `json:"count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductListResponse listado de productos (con el conteo pendiente aplicado
// cuando el borrador de la sesión tiene cambios para el producto).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
