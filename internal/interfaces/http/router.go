package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/litrosmakina/ticari-api/internal/application/auth"
	"github.com/litrosmakina/ticari-api/internal/application/ledger"
	"github.com/litrosmakina/ticari-api/internal/application/sales"
	"github.com/litrosmakina/ticari-api/internal/application/settings"
	"github.com/litrosmakina/ticari-api/internal/application/treasury"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	"github.com/litrosmakina/ticari-api/internal/infrastructure/rates"
)

// RouterDeps rotaların ihtiyaç duyduğu kullanım senaryoları.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	CustomerUC       *sales.CustomerUseCase
	ProductUC        *sales.ProductUseCase
	CategoryUC       *sales.CategoryUseCase
	DocumentUC       *sales.DocumentUseCase
	PaymentUC        *sales.PaymentUseCase
	ImportUC         *sales.ImportUseCase
	AccountUC        *treasury.AccountUseCase
	CheckUC          *treasury.CheckUseCase
	StatementUC      *ledger.StatementUseCase
	ReconciliationUC *ledger.ReconciliationUseCase
	ReportUC         *ledger.ReportUseCase
	PDFUC            *ledger.PDFUseCase
	CompanyUC        *settings.CompanyUseCase
	RatesClient      *rates.TCMBClient
	JWTSecret        string
}

// Router tüm API rotalarını bağlar.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Kimlik doğrulama (herkese açık)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// JWT zorunlu rotalar
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Cari hesaplar
	customerHandler := NewCustomerHandler(
		deps.CustomerUC, deps.DocumentUC, deps.PaymentUC,
		deps.CheckUC, deps.StatementUC, deps.PDFUC,
	)
	customers := protected.Group("/customers")
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.Get)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Get("/:id/statement", customerHandler.Statement)
	customers.Get("/:id/statement/pdf", customerHandler.StatementPDF)
	customers.Get("/:id/balance", customerHandler.Balance)
	customers.Get("/:id/documents", customerHandler.Documents)
	customers.Get("/:id/payments", customerHandler.Payments)
	customers.Get("/:id/checks", customerHandler.Checks)

	// Ürünler ve kategoriler
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.Get)
	products.Put("/:id", productHandler.Update)
	products.Post("/:id/restock", RequireRole(entity.RoleAdmin, entity.RoleStock), productHandler.Restock)
	products.Delete("/:id", productHandler.Delete)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := protected.Group("/categories")
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Belgeler (teklif/sipariş/fatura/irsaliye)
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents := protected.Group("/documents")
	documents.Post("/", documentHandler.Create)
	documents.Get("/", documentHandler.List)
	documents.Get("/:id", documentHandler.Get)
	documents.Post("/:id/convert", documentHandler.Convert)
	documents.Patch("/:id/status", documentHandler.UpdateStatus)
	documents.Delete("/:id", documentHandler.Delete)

	// Tahsilatlar ve çekler
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments := protected.Group("/payments")
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.Get)
	payments.Delete("/:id", paymentHandler.Delete)

	checkHandler := NewCheckHandler(deps.CheckUC)
	checks := protected.Group("/checks")
	checks.Get("/", checkHandler.List)
	checks.Get("/:id", checkHandler.Get)
	checks.Patch("/:id/status", checkHandler.UpdateStatus)

	// Kasa/banka hesapları; bakiyeye dokunan işlemler muhasebe yetkisi ister
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts := protected.Group("/accounts", RequireRole(entity.RoleAdmin, entity.RoleAccountant))
	accounts.Post("/", accountHandler.Create)
	accounts.Get("/", accountHandler.List)
	accounts.Post("/transfer", accountHandler.Transfer)
	accounts.Get("/:id", accountHandler.Get)
	accounts.Put("/:id", accountHandler.Update)
	accounts.Delete("/:id", accountHandler.Delete)
	accounts.Get("/:id/transactions", accountHandler.Transactions)
	accounts.Post("/:id/transactions", accountHandler.RecordTransaction)
	accounts.Post("/:id/rebuild-balance", accountHandler.RebuildBalance)

	// Mutabakatlar
	reconciliationHandler := NewReconciliationHandler(deps.ReconciliationUC, deps.PDFUC)
	reconciliations := protected.Group("/reconciliations")
	reconciliations.Get("/preview", reconciliationHandler.Preview)
	reconciliations.Get("/preview/pdf", reconciliationHandler.PreviewPDF)
	reconciliations.Post("/", reconciliationHandler.Save)
	reconciliations.Get("/", reconciliationHandler.List)
	reconciliations.Get("/:id", reconciliationHandler.Get)
	reconciliations.Get("/:id/letter", reconciliationHandler.Letter)

	// Raporlar
	reportHandler := NewReportHandler(deps.ReportUC)
	reports := protected.Group("/reports")
	reports.Get("/profit", reportHandler.Profit)
	reports.Get("/balances", reportHandler.Balances)
	reports.Get("/stock", reportHandler.StockValuation)
	reports.Get("/dashboard", reportHandler.Dashboard)

	// Kurlar
	ratesHandler := NewRatesHandler(deps.RatesClient)
	protected.Get("/rates/today", ratesHandler.Today)

	// Dış aktarım
	importHandler := NewImportHandler(deps.ImportUC)
	protected.Post("/import/parasut", RequireRole(entity.RoleAdmin, entity.RoleAccountant), importHandler.Invoices)

	// Firma ayarları
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	company := protected.Group("/company")
	company.Get("/", companyHandler.Get)
	company.Put("/", RequireRole(entity.RoleAdmin), companyHandler.Update)
}
