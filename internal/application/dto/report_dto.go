package dto

// PendingChangeResponse una línea del borrador de cambios.
type PendingChangeResponse struct {
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
	Baseline  int    `json:"baseline"`
	Proposed  int    `json:"proposed"`
	Delta     int    `json:"delta"`
}

// ProposeRequest incremento/decremento de un producto en el borrador.
type ProposeRequest struct {
	ProductID int64 `json:"product_id"`
}

// CommitRequest confirma el borrador a nombre de un empleado, con vehículo
// destino opcional.
type CommitRequest struct {
	EmployeeID int64  `json:"employee_id"`
	VehicleID  *int64 `json:"vehicle_id"`
}

// CommitResponse resumen del lote confirmado.
type CommitResponse struct {
	BatchID   string  `json:"batch_id"`
	Committed []int64 `json:"committed"`
	Skipped   []int64 `json:"skipped"`
}

// ReportResponse una entrada del libro de movimientos.
type ReportResponse struct {
	ID                 int64   `json:"id"`
	Date               string  `json:"date"`
	Time               string  `json:"time"`
	EmployeeID         int64   `json:"employee_id"`
	EmployeeName       string  `json:"employee_name"`
	EmployeeSurname    string  `json:"employee_surname"`
	ProductID          int64   `json:"product_id"`
	ProductTitle       string  `json:"product_title"`
	ProductDesc        string  `json:"product_desc"`
	ProductUtility     string  `json:"product_utility"`
	ProductCountChange int     `json:"product_count_change"`
	VehicleID          *int64  `json:"vehicle_id,omitempty"`
	VehiclePlate       *string `json:"vehicle_plate,omitempty"`
	VehicleName        *string `json:"vehicle_name,omitempty"`
}

// ReportListResponse listado filtrado de reportes.
type ReportListResponse struct {
	Items []ReportResponse `json:"items"`
	Total int              `json:"total"`
}

// InventoryItemResponse una fila de material en mano por empleado.
type InventoryItemResponse struct {
	EmployeeID      int64  `json:"employee_id"`
	EmployeeName    string `json:"employee_name"`
	EmployeeSurname string `json:"employee_surname"`
	ProductID       int64  `json:"product_id"`
	ProductTitle    string `json:"product_title"`
	HeldCount       int    `json:"held_count"`
}
