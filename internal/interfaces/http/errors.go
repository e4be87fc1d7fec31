package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/domain"
)

// errMapping alan hatalarını HTTP durum kodu ve istemci koduna çevirir.
// Kullanım senaryoları hataları %w ile sardığı için errors.Is ile eşlenir.
var errMapping = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrInvalidPeriod, fiber.StatusBadRequest, "INVALID_PERIOD"},
	{domain.ErrMissingExchangeRate, fiber.StatusBadRequest, "MISSING_EXCHANGE_RATE"},
	{domain.ErrCurrencyMismatch, fiber.StatusBadRequest, "CURRENCY_MISMATCH"},
	{domain.ErrUserNotFound, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
	{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
	{domain.ErrCustomerHasRecords, fiber.StatusConflict, "CUSTOMER_IN_USE"},
	{domain.ErrAccountHasTransactions, fiber.StatusConflict, "ACCOUNT_IN_USE"},
	{domain.ErrProductInUse, fiber.StatusConflict, "PRODUCT_IN_USE"},
	{domain.ErrCheckNotPending, fiber.StatusConflict, "CHECK_NOT_PENDING"},
}

// fail hatayı eşleyip JSON hata gövdesiyle yanıtlar.
func fail(c *fiber.Ctx, err error) error {
	for _, m := range errMapping {
		if errors.Is(err, m.target) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: m.target.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// badBody gövde ayrıştırma hatası için standart yanıt.
func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "istek gövdesi çözümlenemedi"})
}

// requireID path parametresini okur; boşsa hata yanıtı yazar.
func requireID(c *fiber.Ctx, name string) (string, error) {
	id := c.Params(name)
	if id == "" {
		return "", c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: name + " gerekli"})
	}
	return id, nil
}
