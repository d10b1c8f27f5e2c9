package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/warehouse"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// WarehouseHandler maneja el flujo de piso: acumular cambios pendientes de
// stock y confirmarlos en lote. Todas las rutas son públicas (el kiosko del
// almacén no tiene login).
type WarehouseHandler struct {
	pending *warehouse.PendingLedger
	commit  *warehouse.CommitUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(pending *warehouse.PendingLedger, commit *warehouse.CommitUseCase) *WarehouseHandler {
	return &WarehouseHandler{pending: pending, commit: commit}
}

// Increase godoc
// @Summary      Proponer +1 para un producto
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProposeRequest  true  "product_id"
// @Success      200   {object}  dto.PendingChangeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/warehouse/increase [post]
func (h *WarehouseHandler) Increase(c *fiber.Ctx) error {
	return h.propose(c, h.pending.Increase)
}

// Decrease godoc
// @Summary      Proponer -1 para un producto
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProposeRequest  true  "product_id"
// @Success      200   {object}  dto.PendingChangeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/warehouse/decrease [post]
func (h *WarehouseHandler) Decrease(c *fiber.Ctx) error {
	return h.propose(c, h.pending.Decrease)
}

func (h *WarehouseHandler) propose(c *fiber.Ctx, op func(int64) (warehouse.PendingChange, error)) error {
	var in dto.ProposeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id requerido"})
	}
	change, err := op(in.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrNegativeStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NEGATIVE_STOCK", Message: "el stock propuesto no puede ser negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toPendingResponse(change))
}

// Pending godoc
// @Summary      Resumen del borrador de cambios
// @Tags         warehouse
// @Produce      json
// @Success      200  {array}  dto.PendingChangeResponse
// @Router       /api/warehouse/pending [get]
func (h *WarehouseHandler) Pending(c *fiber.Ctx) error {
	changes := h.pending.Snapshot()
	out := make([]dto.PendingChangeResponse, 0, len(changes))
	for _, change := range changes {
		out = append(out, toPendingResponse(change))
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Descartar el borrador de cambios
// @Tags         warehouse
// @Success      204
// @Router       /api/warehouse/clear [post]
func (h *WarehouseHandler) Clear(c *fiber.Ctx) error {
	h.pending.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}

// Commit godoc
// @Summary      Confirmar el borrador a nombre de un empleado
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommitRequest  true  "employee_id, vehicle_id opcional"
// @Success      200   {object}  dto.CommitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/warehouse/commit [post]
func (h *WarehouseHandler) Commit(c *fiber.Ctx) error {
	var in dto.CommitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.EmployeeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employee_id requerido"})
	}
	result, err := h.commit.Commit(c.Context(), in.EmployeeID, in.VehicleID)
	if err != nil {
		if errors.Is(err, domain.ErrNothingPending) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOTHING_PENDING", Message: "no hay cambios pendientes"})
		}
		if errors.Is(err, domain.ErrEmployeeRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPLOYEE_REQUIRED", Message: "el empleado no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CommitResponse{
		BatchID:   result.BatchID,
		Committed: result.Committed,
		Skipped:   result.Skipped,
	})
}

func toPendingResponse(change warehouse.PendingChange) dto.PendingChangeResponse {
	return dto.PendingChangeResponse{
		ProductID: change.ProductID,
		Title:     change.Title,
		Baseline:  change.Baseline,
		Proposed:  change.Proposed,
		Delta:     change.Delta,
	}
}
