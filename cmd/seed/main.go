// seed geliştirme ortamına örnek veri yükler: firma bilgisi, admin kullanıcı,
// kasa/banka hesapları, ürünler, cariler ve örnek bir teklif→fatura→tahsilat zinciri.
//
// Kullanım: go run ./cmd/seed
// Şemanın hazır olduğu boş bir veritabanında çalıştırılmalıdır; ikinci kez
// çalıştırmak tekil alanlarda (e-posta, SKU) çakışma hatası verir.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/litrosmakina/ticari-api/internal/application/auth"
	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/application/sales"
	"github.com/litrosmakina/ticari-api/internal/application/settings"
	"github.com/litrosmakina/ticari-api/internal/application/treasury"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	"github.com/litrosmakina/ticari-api/internal/infrastructure/postgres"
	"github.com/litrosmakina/ticari-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("yapılandırma yüklenemedi", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("PostgreSQL bağlantısı", err)
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	docRepo := postgres.NewDocumentRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := settings.NewCompanyUseCase(companyRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := sales.NewCustomerUseCase(customerRepo, docRepo, paymentRepo)
	categoryUC := sales.NewCategoryUseCase(categoryRepo)
	productUC := sales.NewProductUseCase(productRepo, docRepo)
	documentUC := sales.NewDocumentUseCase(docRepo, customerRepo, productRepo, txRunner)
	paymentUC := sales.NewPaymentUseCase(paymentRepo, customerRepo, docRepo, txRunner)
	accountUC := treasury.NewAccountUseCase(accountRepo, txRepo, txRunner)

	// Firma bilgisi
	if _, err := companyUC.Update(dto.CompanyInfoRequest{
		Name:      "Litros Makina San. ve Tic. Ltd. Şti.",
		TaxNo:     "6120384751",
		TaxOffice: "Ostim VD",
		Address:   "Ostim OSB Mah. 1234. Cad. No:5, Yenimahalle/Ankara",
		Phone:     "+90 312 555 44 33",
		Email:     "info@litrosmakina.com.tr",
	}); err != nil {
		fail("firma bilgisi", err)
	}

	// Admin kullanıcı
	if _, err := authUC.RegisterUser(dto.RegisterRequest{
		Name:     "Yönetici",
		Email:    "admin@litrosmakina.com.tr",
		Password: "degistir-beni-123",
		Role:     entity.RoleAdmin,
	}); err != nil {
		fail("admin kullanıcı", err)
	}

	// Kasa ve banka hesapları
	kasa, err := accountUC.Create(ctx, dto.CreateAccountRequest{
		Name:     "Merkez Kasa",
		Type:     "CASH",
		Currency: entity.CurrencyTRY,
	})
	if err != nil {
		fail("kasa hesabı", err)
	}
	if _, err := accountUC.Create(ctx, dto.CreateAccountRequest{
		Name:     "İş Bankası Vadesiz",
		Type:     "BANK",
		Currency: entity.CurrencyTRY,
		Balance:  decimal.NewFromInt(150000),
		IBAN:     "TR33 0006 4000 0011 2345 6789 01",
		BankName: "Türkiye İş Bankası",
		Branch:   "Ostim",
	}); err != nil {
		fail("banka hesabı", err)
	}

	// Kategori ve ürünler
	category, err := categoryUC.Create(dto.CreateCategoryRequest{Name: "Hidrolik Pompalar"})
	if err != nil {
		fail("kategori", err)
	}
	pump, err := productUC.Create(dto.CreateProductRequest{
		SKU:        "HP-2200",
		Name:       "Hidrolik Pompa 220 bar",
		CategoryID: category.ID,
		Stock:      decimal.NewFromInt(24),
		Unit:       "adet",
		Price:      decimal.NewFromInt(18500),
		Currency:   entity.CurrencyTRY,
		Cost:       decimal.NewFromInt(12750),
		VATRate:    decimal.NewFromInt(20),
		TrackStock: true,
	})
	if err != nil {
		fail("ürün", err)
	}
	if _, err := productUC.Create(dto.CreateProductRequest{
		SKU:        "HV-010",
		Name:       "Yön Kontrol Valfi",
		CategoryID: category.ID,
		Stock:      decimal.NewFromInt(60),
		Unit:       "adet",
		Price:      decimal.NewFromInt(3400),
		Currency:   entity.CurrencyTRY,
		Cost:       decimal.NewFromInt(2100),
		VATRate:    decimal.NewFromInt(20),
		TrackStock: true,
	}); err != nil {
		fail("ürün", err)
	}

	// Cariler
	aydin, err := customerUC.Create(dto.CreateCustomerRequest{
		Name:          "Aydın Makine San. A.Ş.",
		Email:         "muhasebe@aydinmakine.com.tr",
		TaxNo:         "0750412389",
		TaxOffice:     "Bornova VD",
		City:          "İzmir",
		District:      "Bornova",
		IsLegalEntity: true,
	})
	if err != nil {
		fail("cari", err)
	}
	if _, err := customerUC.Create(dto.CreateCustomerRequest{
		Name:          "Demir Hidrolik Ltd. Şti.",
		Email:         "info@demirhidrolik.com",
		TaxNo:         "2930158746",
		TaxOffice:     "Kartal VD",
		City:          "İstanbul",
		District:      "Kartal",
		IsLegalEntity: true,
	}); err != nil {
		fail("cari", err)
	}

	// Örnek akış: teklif → fatura → kısmi tahsilat
	today := time.Now().Format("2006-01-02")
	quote, err := documentUC.Create(ctx, dto.CreateDocumentRequest{
		Type:       entity.DocTypeQuote,
		CustomerID: aydin.ID,
		Title:      "TKF-2026-001",
		Date:       today,
		Currency:   entity.CurrencyTRY,
		Items: []dto.CreateDocumentItemRequest{
			{ProductID: pump.ID, Quantity: decimal.NewFromInt(2)},
		},
		Notes: "Teslimat 2 hafta içinde.",
	})
	if err != nil {
		fail("teklif", err)
	}
	invoice, err := documentUC.Convert(ctx, quote.ID, dto.ConvertDocumentRequest{
		TargetType: entity.DocTypeInvoice,
		Title:      "FTR-2026-001",
		Date:       today,
	})
	if err != nil {
		fail("fatura dönüşümü", err)
	}
	if _, err := paymentUC.Create(ctx, dto.CreatePaymentRequest{
		CustomerID:  aydin.ID,
		DocID:       invoice.ID,
		AccountID:   kasa.ID,
		Date:        today,
		Amount:      decimal.NewFromInt(20000),
		Currency:    entity.CurrencyTRY,
		Method:      "CASH",
		Description: "Fatura ön ödemesi",
	}); err != nil {
		fail("tahsilat", err)
	}

	fmt.Println("Örnek veri yüklendi.")
	fmt.Println("Giriş: admin@litrosmakina.com.tr / degistir-beni-123")
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
	os.Exit(1)
}
