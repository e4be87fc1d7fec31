package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/application/sales"
	"github.com/litrosmakina/ticari-api/internal/application/treasury"
)

// PaymentHandler tahsilat uçlarını yönetir.
type PaymentHandler struct {
	uc *sales.PaymentUseCase
}

// NewPaymentHandler handler'ı kurar.
func NewPaymentHandler(uc *sales.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create godoc
// @Summary      Tahsilat kaydet
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "tahsilat"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	payment, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// List tahsilatları sayfalı listeler.
// GET /api/payments?limit=&offset=
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	payments, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(payments)
}

// Get tek tahsilatı döner.
// GET /api/payments/:id
func (h *PaymentHandler) Get(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	payment, err := h.uc.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(payment)
}

// Delete tahsilatı ters kayıtla iptal eder; çekli tahsilatlar silinemez.
// DELETE /api/payments/:id
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CheckHandler çek yaşam döngüsü uçlarını yönetir.
type CheckHandler struct {
	uc *treasury.CheckUseCase
}

// NewCheckHandler handler'ı kurar.
func NewCheckHandler(uc *treasury.CheckUseCase) *CheckHandler {
	return &CheckHandler{uc: uc}
}

// List çekleri durum filtresiyle listeler.
// GET /api/checks?status=PENDING&limit=&offset=
func (h *CheckHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	checks, err := h.uc.List(c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(checks)
}

// Get tek çeki döner.
// GET /api/checks/:id
func (h *CheckHandler) Get(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	check, err := h.uc.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(check)
}

// UpdateStatus godoc
// @Summary      Çek durumunu değiştir
// @Description  PENDING çek COLLECTED, BOUNCED veya RETURNED yapılabilir; geri dönüş yoktur.
// @Tags         checks
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "çek id"
// @Param        body  body  dto.UpdateCheckStatusRequest  true  "hedef durum"
// @Success      200   {object}  dto.CheckResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/checks/{id}/status [patch]
func (h *CheckHandler) UpdateStatus(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	var in dto.UpdateCheckStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	check, err := h.uc.UpdateStatus(c.Context(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(check)
}
