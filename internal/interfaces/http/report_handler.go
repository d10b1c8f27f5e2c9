package http

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/reports"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/export"
)

// pollTimeout máximo que un long-poll espera un cambio del libro antes de
// responder vacío.
const pollTimeout = 25 * time.Second

// ReportPDFGenerator genera el PDF del listado de movimientos.
type ReportPDFGenerator interface {
	GenerateReportListPDF(reports []*entity.Report) ([]byte, error)
}

// ReportHandler maneja la consulta del libro de movimientos, la vista de
// material en mano y las exportaciones.
type ReportHandler struct {
	uc       *reports.ReportUseCase
	exporter *export.Exporter
	pdfGen   ReportPDFGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase, exporter *export.Exporter, pdfGen ReportPDFGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, exporter: exporter, pdfGen: pdfGen}
}

// parseQuery arma la consulta a partir de los query params. Los ejes son:
// period (relativo) o from/to (rango explícito) más q (búsqueda de texto).
// La normalización de precedencia la hace reports.NewQuery.
func parseQuery(c *fiber.Ctx) (reports.Query, *dto.ErrorResponse) {
	timeFilter := reports.NoTime()

	from, to := c.Query("from"), c.Query("to")
	switch {
	case from != "" && to != "":
		fromT, err := time.ParseInLocation(entity.ReportDateLayout, from, time.Local)
		if err != nil {
			return reports.Query{}, &dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser YYYY-MM-DD"}
		}
		toT, err := time.ParseInLocation(entity.ReportDateLayout, to, time.Local)
		if err != nil {
			return reports.Query{}, &dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser YYYY-MM-DD"}
		}
		if toT.Before(fromT) {
			fromT, toT = toT, fromT
		}
		timeFilter = reports.ByRange(fromT, toT)
	case from != "" || to != "":
		return reports.Query{}, &dto.ErrorResponse{Code: "VALIDATION", Message: "from y to van juntos"}
	case c.Query("period") != "":
		period, err := reports.ParsePeriod(c.Query("period"))
		if err != nil {
			return reports.Query{}, &dto.ErrorResponse{Code: "VALIDATION", Message: "period debe ser today|week|month|year"}
		}
		timeFilter = reports.ByPeriod(period)
	}

	return reports.NewQuery(timeFilter, c.Query("q")), nil
}

// List godoc
// @Summary      Listar movimientos filtrados
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "today|week|month|year"
// @Param        from    query  string  false  "YYYY-MM-DD (con to)"
// @Param        to      query  string  false  "YYYY-MM-DD (con from)"
// @Param        q       query  string  false  "Búsqueda de texto"
// @Success      200     {object}  dto.ReportListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	q, errResp := parseQuery(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}
	list, err := h.uc.List(q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.ReportResponse, 0, len(list))
	for _, r := range list {
		items = append(items, toReportResponse(r))
	}
	return c.JSON(dto.ReportListResponse{Items: items, Total: len(items)})
}

// Inventory godoc
// @Summary      Material en mano por empleado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryItemResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	items, err := h.uc.Inventory()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.InventoryItemResponse{
			EmployeeID:      item.EmployeeID,
			EmployeeName:    item.EmployeeName,
			EmployeeSurname: item.EmployeeSurname,
			ProductID:       item.ProductID,
			ProductTitle:    item.ProductTitle,
			HeldCount:       item.HeldCount,
		})
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar movimientos filtrados a CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        encoding  query  string  false  "utf8 (defecto) | latin1"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/export/csv [get]
func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	q, errResp := parseQuery(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}
	enc := export.EncodingUTF8
	switch strings.ToLower(c.Query("encoding")) {
	case "", "utf8":
	case "latin1":
		enc = export.EncodingLatin1
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "encoding debe ser utf8 o latin1"})
	}
	list, err := h.uc.List(q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	path, err := h.exporter.WriteCSV(list, enc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Download(path, filepath.Base(path))
}

// ExportPDF godoc
// @Summary      Exportar movimientos filtrados a PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/export/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	q, errResp := parseQuery(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}
	list, err := h.uc.List(q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	doc, err := h.pdfGen.GenerateReportListPDF(list)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	name := strings.TrimSuffix(export.Filename(time.Now()), ".csv") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(doc)
}

// Poll godoc
// @Summary      Long-poll de cambios del libro
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /api/reports/poll [get]
func (h *ReportHandler) Poll(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), pollTimeout)
	defer cancel()
	changed := h.uc.WaitForChange(ctx)
	return c.JSON(fiber.Map{"changed": changed})
}

// Clear godoc
// @Summary      Borrar todo el libro de movimientos
// @Tags         reports
// @Security     Bearer
// @Success      204
// @Router       /api/reports [delete]
func (h *ReportHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.ClearAll(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toReportResponse(r *entity.Report) dto.ReportResponse {
	return dto.ReportResponse{
		ID:                 r.ID,
		Date:               r.Date,
		Time:               r.Time,
		EmployeeID:         r.EmployeeID,
		EmployeeName:       r.EmployeeName,
		EmployeeSurname:    r.EmployeeSurname,
		ProductID:          r.ProductID,
		ProductTitle:       r.ProductTitle,
		ProductDesc:        r.ProductDesc,
		ProductUtility:     string(r.ProductUtility),
		ProductCountChange: r.ProductCountChange,
		VehicleID:          r.VehicleID,
		VehiclePlate:       r.VehiclePlate,
		VehicleName:        r.VehicleName,
	}
}
