package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/application/sales"
	"github.com/litrosmakina/ticari-api/internal/application/settings"
	"github.com/litrosmakina/ticari-api/internal/infrastructure/rates"
)

// CompanyHandler firma ayarları uçlarını yönetir.
type CompanyHandler struct {
	uc *settings.CompanyUseCase
}

// NewCompanyHandler handler'ı kurar.
func NewCompanyHandler(uc *settings.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Get firma bilgilerini döner.
// GET /api/company
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	info, err := h.uc.Get()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(info)
}

// Update firma bilgilerini günceller (ilk çağrıda oluşturur).
// PUT /api/company
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.CompanyInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	info, err := h.uc.Update(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(info)
}

// RatesHandler TCMB günlük kur ucunu yönetir.
type RatesHandler struct {
	client *rates.TCMBClient
}

// NewRatesHandler handler'ı kurar.
func NewRatesHandler(client *rates.TCMBClient) *RatesHandler {
	return &RatesHandler{client: client}
}

// Today godoc
// @Summary      Günlük döviz satış kurları
// @Description  TCMB today.xml bülteninden; yalnızca öneri amaçlıdır, kayıtlara yazılan kur donuktur.
// @Tags         rates
// @Produce      json
// @Success      200  {object}  dto.RatesResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/rates/today [get]
func (h *RatesHandler) Today(c *fiber.Ctx) error {
	daily, err := h.client.Fetch(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "RATES_UNAVAILABLE", Message: "kur bülteni alınamadı"})
	}
	out := dto.RatesResponse{Date: daily.Date.Format("2006-01-02")}
	if usd, ok := daily.Rate("USD"); ok {
		out.USD = usd.String()
	}
	if eur, ok := daily.Rate("EUR"); ok {
		out.EUR = eur.String()
	}
	return c.JSON(out)
}

// ImportHandler Paraşüt CSV aktarım ucunu yönetir.
type ImportHandler struct {
	uc *sales.ImportUseCase
}

// NewImportHandler handler'ı kurar.
func NewImportHandler(uc *sales.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Invoices godoc
// @Summary      Paraşüt satış raporu aktar
// @Description  multipart "file" alanındaki CSV'den geçmiş faturaları ve eksik carileri yükler.
// @Tags         import
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV dosyası"
// @Success      200   {object}  dto.ImportResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/import/parasut [post]
func (h *ImportHandler) Invoices(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "file alanında CSV gerekli"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dosya açılamadı"})
	}
	defer file.Close()

	result, err := h.uc.ImportInvoices(file)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(result)
}
