package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/application/ledger"
)

// ReportHandler kâr, bakiye ve stok değerleme raporlarını yönetir.
type ReportHandler struct {
	uc *ledger.ReportUseCase
}

// NewReportHandler handler'ı kurar.
func NewReportHandler(uc *ledger.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Profit godoc
// @Summary      Dönem kâr raporu
// @Description  Fatura satırlarını o anki ürün maliyetiyle eşleyip TRY bazında kâr çıkarır.
// @Tags         reports
// @Produce      json
// @Param        period_start  query  string  true  "YYYY-MM-DD"
// @Param        period_end    query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  dto.ProfitReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/profit [get]
func (h *ReportHandler) Profit(c *fiber.Ctx) error {
	var in dto.ProfitReportRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	report, err := h.uc.Profit(in)
	if err != nil {
		return fail(c, err)
	}
	if c.Query("format") == "csv" {
		return sendCSV(c, "kar-raporu.csv", profitCSVRows(report))
	}
	return c.JSON(report)
}

// Balances tüm carilerin güncel TRY bakiyelerini döner.
// GET /api/reports/balances?format=csv
func (h *ReportHandler) Balances(c *fiber.Ctx) error {
	balances, err := h.uc.CurrentBalances()
	if err != nil {
		return fail(c, err)
	}
	if c.Query("format") == "csv" {
		return sendCSV(c, "cari-bakiyeler.csv", balancesCSVRows(balances))
	}
	return c.JSON(balances)
}

// StockValuation stok değerleme raporunu döner.
// GET /api/reports/stock?format=csv
func (h *ReportHandler) StockValuation(c *fiber.Ctx) error {
	lines, err := h.uc.StockValuation()
	if err != nil {
		return fail(c, err)
	}
	if c.Query("format") == "csv" {
		return sendCSV(c, "stok-degerleme.csv", stockCSVRows(lines))
	}
	return c.JSON(lines)
}

// Dashboard özet göstergeleri döner.
// GET /api/reports/dashboard
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
