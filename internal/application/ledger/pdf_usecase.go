package ledger

import (
	"fmt"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

// PDFGenerator ekstre ve mutabakat mektubu üreten çıktı portu.
type PDFGenerator interface {
	GenerateStatementPDF(statement *dto.StatementResponse, customer *dto.CustomerResponse, company *dto.CompanyInfoResponse) ([]byte, error)
	GenerateReconciliationPDF(preview *dto.ReconciliationPreviewResponse, customer *dto.CustomerResponse, company *dto.CompanyInfoResponse) ([]byte, error)
}

// PDFUseCase ekstre ve mutabakat mektuplarını PDF olarak hazırlar.
type PDFUseCase struct {
	statements   *StatementUseCase
	recon        *ReconciliationUseCase
	customerRepo repository.CustomerRepository
	companyRepo  repository.CompanyRepository
	generator    PDFGenerator
}

// NewPDFUseCase kullanım senaryosunu kurar.
func NewPDFUseCase(
	statements *StatementUseCase,
	recon *ReconciliationUseCase,
	customerRepo repository.CustomerRepository,
	companyRepo repository.CompanyRepository,
	generator PDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		statements:   statements,
		recon:        recon,
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
		generator:    generator,
	}
}

// StatementPDF müşterinin tam geçmiş ekstresini PDF olarak döner.
func (uc *PDFUseCase) StatementPDF(customerID string) ([]byte, error) {
	statement, err := uc.statements.BuildStatement(customerID)
	if err != nil {
		return nil, err
	}
	customer, company, err := uc.parties(customerID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateStatementPDF(statement, customer, company)
}

// ReconciliationPDF dönem mutabakat mektubunu PDF olarak döner.
func (uc *PDFUseCase) ReconciliationPDF(in dto.ReconciliationPreviewRequest) ([]byte, error) {
	preview, err := uc.recon.Preview(in)
	if err != nil {
		return nil, err
	}
	customer, company, err := uc.parties(in.CustomerID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateReconciliationPDF(preview, customer, company)
}

// ReconciliationLetter kayıtlı mutabakatın mektubunu, kaydın dönemini
// yeniden hesaplayarak PDF olarak döner.
func (uc *PDFUseCase) ReconciliationLetter(id string) ([]byte, error) {
	rec, err := uc.recon.Get(id)
	if err != nil {
		return nil, err
	}
	return uc.ReconciliationPDF(dto.ReconciliationPreviewRequest{
		CustomerID:  rec.CustomerID,
		PeriodStart: rec.PeriodStart,
		PeriodEnd:   rec.PeriodEnd,
	})
}

func (uc *PDFUseCase) parties(customerID string) (*dto.CustomerResponse, *dto.CompanyInfoResponse, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, nil, fmt.Errorf("müşteri okunamadı: %w", err)
	}
	if customer == nil {
		return nil, nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("firma bilgisi okunamadı: %w", err)
	}
	if company == nil {
		// Firma ayarları henüz girilmemişse antetsiz üretilir.
		company = &entity.CompanyInfo{Name: " "}
	}
	return pdfCustomer(customer), pdfCompany(company), nil
}

func pdfCustomer(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		TaxNo:         c.TaxNo,
		TaxOffice:     c.TaxOffice,
		Address:       c.Address,
		Phone:         c.Phone,
		City:          c.City,
		District:      c.District,
		PostCode:      c.PostCode,
		IsLegalEntity: c.IsLegalEntity,
	}
}

func pdfCompany(info *entity.CompanyInfo) *dto.CompanyInfoResponse {
	return &dto.CompanyInfoResponse{
		Name:      info.Name,
		TaxNo:     info.TaxNo,
		TaxOffice: info.TaxOffice,
		MersisNo:  info.MersisNo,
		Address:   info.Address,
		Phone:     info.Phone,
		Email:     info.Email,
		Website:   info.Website,
		LogoURL:   info.LogoURL,
	}
}
