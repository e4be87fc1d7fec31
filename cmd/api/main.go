package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/litrosmakina/ticari-api/internal/application/auth"
	"github.com/litrosmakina/ticari-api/internal/application/ledger"
	"github.com/litrosmakina/ticari-api/internal/application/sales"
	"github.com/litrosmakina/ticari-api/internal/application/settings"
	"github.com/litrosmakina/ticari-api/internal/application/treasury"
	infrapdf "github.com/litrosmakina/ticari-api/internal/infrastructure/pdf"
	"github.com/litrosmakina/ticari-api/internal/infrastructure/postgres"
	"github.com/litrosmakina/ticari-api/internal/infrastructure/rates"
	httpRouter "github.com/litrosmakina/ticari-api/internal/interfaces/http"
	"github.com/litrosmakina/ticari-api/pkg/config"
	"github.com/litrosmakina/ticari-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("yapılandırma yüklenemedi: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("uygulama başlatılıyor")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL bağlantısı")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	docRepo := postgres.NewDocumentRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	checkRepo := postgres.NewCheckRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	reconRepo := postgres.NewReconciliationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	customerUC := sales.NewCustomerUseCase(customerRepo, docRepo, paymentRepo)
	productUC := sales.NewProductUseCase(productRepo, docRepo)
	categoryUC := sales.NewCategoryUseCase(categoryRepo)
	documentUC := sales.NewDocumentUseCase(docRepo, customerRepo, productRepo, txRunner)
	paymentUC := sales.NewPaymentUseCase(paymentRepo, customerRepo, docRepo, txRunner)
	importUC := sales.NewImportUseCase(customerRepo, docRepo)

	accountUC := treasury.NewAccountUseCase(accountRepo, txRepo, txRunner)
	checkUC := treasury.NewCheckUseCase(checkRepo, txRunner)

	statementUC := ledger.NewStatementUseCase(customerRepo, docRepo, paymentRepo)
	reconciliationUC := ledger.NewReconciliationUseCase(customerRepo, docRepo, paymentRepo, reconRepo)
	reportUC := ledger.NewReportUseCase(customerRepo, docRepo, paymentRepo, productRepo, checkRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := ledger.NewPDFUseCase(statementUC, reconciliationUC, customerRepo, companyRepo, pdfGenerator)

	companyUC := settings.NewCompanyUseCase(companyRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	ratesClient := rates.NewTCMBClient(
		cfg.Rates.URL,
		time.Duration(cfg.Rates.TimeoutSeconds)*time.Second,
		time.Duration(cfg.Rates.CacheMinutes)*time.Minute,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ticari API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		CustomerUC:       customerUC,
		ProductUC:        productUC,
		CategoryUC:       categoryUC,
		DocumentUC:       documentUC,
		PaymentUC:        paymentUC,
		ImportUC:         importUC,
		AccountUC:        accountUC,
		CheckUC:          checkUC,
		StatementUC:      statementUC,
		ReconciliationUC: reconciliationUC,
		ReportUC:         reportUC,
		PDFUC:            pdfUC,
		CompanyUC:        companyUC,
		RatesClient:      ratesClient,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP sunucusu sonlandı")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("kapanış sinyali alındı, sunucu durduruluyor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("sunucu kapanışı")
	}

	log.Info().Msg("uygulama durdu")
}
