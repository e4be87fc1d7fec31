package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/application/sales"
)

// ProductHandler ürün uçlarını yönetir.
type ProductHandler struct {
	uc *sales.ProductUseCase
}

// NewProductHandler handler'ı kurar.
func NewProductHandler(uc *sales.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create yeni ürün açar.
// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	product, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// List ürünleri sayfalı listeler.
// GET /api/products?limit=&offset=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	products, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// Get tek ürünü döner.
// GET /api/products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	product, err := h.uc.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

// Update ürün bilgilerini günceller.
// PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	product, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

// Restock stok girişi yapar ve ağırlıklı ortalama maliyeti günceller.
// POST /api/products/:id/restock
func (h *ProductHandler) Restock(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	product, err := h.uc.Restock(id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

// Delete ürünü siler; belge satırında geçiyorsa 409 döner.
// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CategoryHandler ürün kategorisi uçlarını yönetir.
type CategoryHandler struct {
	uc *sales.CategoryUseCase
}

// NewCategoryHandler handler'ı kurar.
func NewCategoryHandler(uc *sales.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create kategori açar.
// POST /api/categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	category, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// List kategorileri listeler.
// GET /api/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(categories)
}

// Update kategori adını günceller.
// PUT /api/categories/:id
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	category, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(category)
}

// Delete kategoriyi siler.
// DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, resp := requireID(c, "id")
	if resp != nil {
		return resp
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
