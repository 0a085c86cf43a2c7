package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturia-api/internal/application/reports"
)

// ReportHandler maneja las peticiones HTTP de reportes (protegido).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard GET /api/reports/dashboard
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// MonthlySales GET /api/reports/monthly-sales
func (h *ReportHandler) MonthlySales(c *fiber.Ctx) error {
	resp, err := h.uc.MonthlySales(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// SalesByYear GET /api/reports/sales-by-year
func (h *ReportHandler) SalesByYear(c *fiber.Ctx) error {
	resp, err := h.uc.SalesByYear(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Outstanding GET /api/reports/outstanding
func (h *ReportHandler) Outstanding(c *fiber.Ctx) error {
	resp, err := h.uc.Outstanding(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
