package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/application/treasury"
)

// AccountHandler kasa/banka hesap uçlarını yönetir.
type AccountHandler struct {
	uc *treasury.AccountUseCase
}

// NewAccountHandler handler'ı kurar.
func NewAccountHandler(uc *treasury.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Create yeni hesap açar; açılış bakiyesi varsa ilk hareketi yazar.
// POST /api/accounts
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	account, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

// List tüm hesapları döner.
// GET /api/accounts
func (h *AccountHandler) List(c *fiber.Ctx) error {
	accounts, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(accounts)
}

// Get tek hesabı döner.
// GET /api/accounts/:id
func (h *AccountHandler) Get(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	account, err := h.uc.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(account)
}

// Update hesap bilgilerini günceller.
// PUT /api/accounts/:id
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	account, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(account)
}

// Delete hesabı siler; hareket geçmişi varsa 409 döner.
// DELETE /api/accounts/:id
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Transactions hesap hareketlerini yeni tarihten eskiye sayfalı döner.
// GET /api/accounts/:id/transactions?limit=&offset=
func (h *AccountHandler) Transactions(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	txs, err := h.uc.Transactions(id, page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(txs)
}

// RecordTransaction hesaba manuel hareket işler (yatırma/çekme/ödeme/tahsilat).
// POST /api/accounts/:id/transactions
func (h *AccountHandler) RecordTransaction(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	var in dto.RecordTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	tx, err := h.uc.RecordTransaction(c.Context(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}

// Transfer godoc
// @Summary      Hesaplar arası virman
// @Description  İki hesap tek işlemde borçlandırılır/alacaklandırılır; bacaklar ortak referansla bağlanır.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "virman"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/accounts/transfer [post]
func (h *AccountHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Transfer(c.Context(), in); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RebuildBalance bakiye önbelleğini hareket toplamından yeniden kurar.
// POST /api/accounts/:id/rebuild-balance
func (h *AccountHandler) RebuildBalance(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	account, err := h.uc.RebuildBalance(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(account)
}
