package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/application/sales"
)

// DocumentHandler teklif/sipariş/fatura/irsaliye uçlarını yönetir.
type DocumentHandler struct {
	uc *sales.DocumentUseCase
}

// NewDocumentHandler handler'ı kurar.
func NewDocumentHandler(uc *sales.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Create godoc
// @Summary      Belge oluştur
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocumentRequest  true  "belge"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/documents [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	doc, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// List belgeleri türe göre sayfalı listeler.
// GET /api/documents?type=INVOICE&limit=&offset=
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	docs, err := h.uc.List(c.Query("type"), page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(docs)
}

// Get belgeyi satırlarıyla döner.
// GET /api/documents/:id
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	doc, err := h.uc.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(doc)
}

// Convert belgeyi iş akışında ilerletir (teklif→sipariş→fatura, irsaliye→fatura).
// POST /api/documents/:id/convert
func (h *DocumentHandler) Convert(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	var in dto.ConvertDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	doc, err := h.uc.Convert(c.Context(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// UpdateStatus belge durumunu değiştirir.
// PATCH /api/documents/:id/status
func (h *DocumentHandler) UpdateStatus(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.UpdateStatus(id, in.Status); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete belgeyi siler; fatura silinirse stok iade edilir.
// DELETE /api/documents/:id
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
