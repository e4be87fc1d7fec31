package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/application/ledger"
)

// ReconciliationHandler dönem mutabakatı uçlarını yönetir.
type ReconciliationHandler struct {
	uc  *ledger.ReconciliationUseCase
	pdf *ledger.PDFUseCase
}

// NewReconciliationHandler handler'ı kurar.
func NewReconciliationHandler(uc *ledger.ReconciliationUseCase, pdf *ledger.PDFUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{uc: uc, pdf: pdf}
}

// Preview godoc
// @Summary      Dönem mutabakatı hesapla
// @Description  Devreden bakiye + dönem hareketleri + dönem sonu bakiyesi; kayıt yazmaz.
// @Tags         reconciliations
// @Produce      json
// @Param        customer_id   query  string  true  "cari id"
// @Param        period_start  query  string  true  "YYYY-MM-DD"
// @Param        period_end    query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  dto.ReconciliationPreviewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reconciliations/preview [get]
func (h *ReconciliationHandler) Preview(c *fiber.Ctx) error {
	var in dto.ReconciliationPreviewRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	preview, err := h.uc.Preview(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(preview)
}

// PreviewPDF mutabakat mektubunu PDF olarak indirir.
// GET /api/reconciliations/preview/pdf?customer_id=&period_start=&period_end=
func (h *ReconciliationHandler) PreviewPDF(c *fiber.Ctx) error {
	var in dto.ReconciliationPreviewRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	data, err := h.pdf.ReconciliationPDF(in)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="mutabakat.pdf"`)
	return c.Send(data)
}

// Letter kayıtlı mutabakatın mektubunu PDF olarak indirir.
// GET /api/reconciliations/:id/letter
func (h *ReconciliationHandler) Letter(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	data, err := h.pdf.ReconciliationLetter(id)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="mutabakat.pdf"`)
	return c.Send(data)
}

// Save mutabakat anlık görüntüsünü kalıcılaştırır.
// POST /api/reconciliations
func (h *ReconciliationHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveReconciliationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	rec, err := h.uc.Save(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// Get kayıtlı mutabakatı döner.
// GET /api/reconciliations/:id
func (h *ReconciliationHandler) Get(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	rec, err := h.uc.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rec)
}

// List mutabakatları listeler; customer_id verilirse cariye göre filtreler.
// GET /api/reconciliations?customer_id=&limit=&offset=
func (h *ReconciliationHandler) List(c *fiber.Ctx) error {
	if customerID := c.Query("customer_id"); customerID != "" {
		recs, err := h.uc.ListByCustomer(customerID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(recs)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	recs, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(recs)
}
