package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/application/ledger"
	"github.com/litrosmakina/ticari-api/internal/application/sales"
	"github.com/litrosmakina/ticari-api/internal/application/treasury"
)

// CustomerHandler cari hesap CRUD ve cariye bağlı görünümleri yönetir.
type CustomerHandler struct {
	uc         *sales.CustomerUseCase
	documents  *sales.DocumentUseCase
	payments   *sales.PaymentUseCase
	checks     *treasury.CheckUseCase
	statements *ledger.StatementUseCase
	pdf        *ledger.PDFUseCase
}

// NewCustomerHandler handler'ı kurar.
func NewCustomerHandler(
	uc *sales.CustomerUseCase,
	documents *sales.DocumentUseCase,
	payments *sales.PaymentUseCase,
	checks *treasury.CheckUseCase,
	statements *ledger.StatementUseCase,
	pdf *ledger.PDFUseCase,
) *CustomerHandler {
	return &CustomerHandler{
		uc:         uc,
		documents:  documents,
		payments:   payments,
		checks:     checks,
		statements: statements,
		pdf:        pdf,
	}
}

// Create yeni cari hesap açar.
// POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	customer, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// List carileri sayfalı listeler; q verilirse ünvan/VKN araması yapar.
// GET /api/customers?q=&limit=&offset=
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	customers, err := h.uc.List(c.Query("q"), page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(customers)
}

// Get tek cariyi döner.
// GET /api/customers/:id
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	customer, err := h.uc.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(customer)
}

// Update cari bilgilerini günceller.
// PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	customer, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(customer)
}

// Delete cariyi siler; fatura veya tahsilat kaydı varsa 409 döner.
// DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Statement carinin tam geçmiş ekstresini döner; format=csv ile indirir.
// GET /api/customers/:id/statement?format=csv
func (h *CustomerHandler) Statement(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	statement, err := h.statements.BuildStatement(id)
	if err != nil {
		return fail(c, err)
	}
	if c.Query("format") == "csv" {
		return sendCSV(c, "ekstre.csv", statementCSVRows(statement))
	}
	return c.JSON(statement)
}

// Balance carinin güncel TRY bakiyesini döner; pozitifse müşteri borçludur.
// GET /api/customers/:id/balance
func (h *CustomerHandler) Balance(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	balance, err := h.statements.Balance(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"customer_id": id, "balance": balance})
}

// StatementPDF ekstreyi PDF olarak indirir.
// GET /api/customers/:id/statement/pdf
func (h *CustomerHandler) StatementPDF(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	data, err := h.pdf.StatementPDF(id)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ekstre.pdf"`)
	return c.Send(data)
}

// Documents carinin belgelerini (tür filtresiyle) listeler.
// GET /api/customers/:id/documents?type=INVOICE
func (h *CustomerHandler) Documents(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	docs, err := h.documents.ListByCustomer(id, c.Query("type"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(docs)
}

// Payments carinin tahsilatlarını listeler.
// GET /api/customers/:id/payments
func (h *CustomerHandler) Payments(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	payments, err := h.payments.ListByCustomer(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(payments)
}

// Checks carinin çeklerini listeler.
// GET /api/customers/:id/checks
func (h *CustomerHandler) Checks(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	checks, err := h.checks.ListByCustomer(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(checks)
}
