package settings

import (
	"time"

	"github.com/google/uuid"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

// CompanyUseCase firma ayarlarını yönetir (tek kayıt). Firma bilgisi
// mutabakat mektubu ve ekstre PDF'lerinin antetinde kullanılır.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyUseCase servisi kurar.
func NewCompanyUseCase(companyRepo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo}
}

// Get firma ayarlarını döner.
func (uc *CompanyUseCase) Get() (*dto.CompanyInfoResponse, error) {
	info, err := uc.companyRepo.Get()
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(info), nil
}

// Update firma ayarlarını yazar; kayıt yoksa oluşturur.
func (uc *CompanyUseCase) Update(in dto.CompanyInfoRequest) (*dto.CompanyInfoResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	info, err := uc.companyRepo.Get()
	if err != nil {
		return nil, err
	}
	if info == nil {
		info = &entity.CompanyInfo{ID: uuid.New().String()}
	}
	info.Name = in.Name
	info.TaxNo = in.TaxNo
	info.TaxOffice = in.TaxOffice
	info.MersisNo = in.MersisNo
	info.Address = in.Address
	info.Phone = in.Phone
	info.Email = in.Email
	info.Website = in.Website
	info.LogoURL = in.LogoURL
	info.UpdatedAt = time.Now()
	if err := uc.companyRepo.Upsert(info); err != nil {
		return nil, err
	}
	return toCompanyResponse(info), nil
}

func toCompanyResponse(info *entity.CompanyInfo) *dto.CompanyInfoResponse {
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
