package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/reports"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/application/warehouse"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/export"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	EmployeeUC *usecase.EmployeeUseCase
	VehicleUC  *usecase.VehicleUseCase
	Pending    *warehouse.PendingLedger
	CommitUC   *warehouse.CommitUseCase
	ReportUC   *reports.ReportUseCase
	AuthUC     *auth.AuthUseCase
	Exporter   *export.Exporter
	PDFGen     ReportPDFGenerator
	JWTSecret  string
}

// Router registra las rutas de la API. El flujo de piso (listar, ±1, commit)
// es público como en el kiosko original; la administración y los reportes
// exigen sesión de administrador.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Catálogo y datos maestros: lectura pública
	productHandler := NewProductHandler(deps.ProductUC)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)
	api.Get("/employees", employeeHandler.List)
	api.Get("/vehicles", vehicleHandler.List)

	// Flujo de piso (público)
	warehouseHandler := NewWarehouseHandler(deps.Pending, deps.CommitUC)
	wh := api.Group("/warehouse")
	wh.Post("/increase", warehouseHandler.Increase)
	wh.Post("/decrease", warehouseHandler.Decrease)
	wh.Get("/pending", warehouseHandler.Pending)
	wh.Post("/clear", warehouseHandler.Clear)
	wh.Post("/commit", warehouseHandler.Commit)

	// Rutas protegidas (requieren Bearer Token con rol admin)
	admin := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(auth.RoleAdmin))

	admin.Post("/products", productHandler.Create)
	admin.Put("/products/:id", productHandler.Update)
	admin.Delete("/products/:id", productHandler.Delete)

	admin.Post("/employees", employeeHandler.Create)
	admin.Delete("/employees/:id", employeeHandler.Delete)

	admin.Post("/vehicles", vehicleHandler.Create)
	admin.Delete("/vehicles/:id", vehicleHandler.Delete)

	reportHandler := NewReportHandler(deps.ReportUC, deps.Exporter, deps.PDFGen)
	admin.Get("/reports", reportHandler.List)
	admin.Get("/reports/inventory", reportHandler.Inventory)
	admin.Get("/reports/export/csv", reportHandler.ExportCSV)
	admin.Get("/reports/export/pdf", reportHandler.ExportPDF)
	admin.Get("/reports/poll", reportHandler.Poll)
	admin.Delete("/reports", reportHandler.Clear)
}
