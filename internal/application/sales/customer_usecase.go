// Package sales satış iş akışının uygulama servisleri: cari hesaplar,
// ürünler, ticari belgeler ve tahsilatlar.
package sales

import (
	"time"

	"github.com/google/uuid"

	"github.com/litrosmakina/ticari-api/internal/application/dto"
	"github.com/litrosmakina/ticari-api/internal/domain"
	"github.com/litrosmakina/ticari-api/internal/domain/entity"
	"github.com/litrosmakina/ticari-api/internal/domain/repository"
)

// CustomerUseCase cari hesap CRUD'u ve silme koruması.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
	docRepo      repository.DocumentRepository
	paymentRepo  repository.PaymentRepository
}

// NewCustomerUseCase servisi kurar.
func NewCustomerUseCase(customerRepo repository.CustomerRepository, docRepo repository.DocumentRepository, paymentRepo repository.PaymentRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, docRepo: docRepo, paymentRepo: paymentRepo}
}

// Create yeni cari hesap açar. Ünvan ve vergi no zorunludur.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.TaxNo == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Email:         in.Email,
		TaxNo:         in.TaxNo,
		TaxOffice:     in.TaxOffice,
		Address:       in.Address,
		Phone:         in.Phone,
		City:          in.City,
		District:      in.District,
		PostCode:      in.PostCode,
		IsLegalEntity: in.IsLegalEntity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Get müşteriyi döner.
func (uc *CustomerUseCase) Get(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List müşterileri sayfalı listeler; query doluysa ünvanda arama yapar.
func (uc *CustomerUseCase) List(query string, limit, offset int) ([]dto.CustomerResponse, error) {
	var (
		customers []*entity.Customer
		err       error
	)
	if query != "" {
		customers, err = uc.customerRepo.Search(query, limit, offset)
	} else {
		customers, err = uc.customerRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// Update müşteri bilgilerini günceller.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" || in.TaxNo == "" {
		return nil, domain.ErrInvalidInput
	}
	customer.Name = in.Name
	customer.Email = in.Email
	customer.TaxNo = in.TaxNo
	customer.TaxOffice = in.TaxOffice
	customer.Address = in.Address
	customer.Phone = in.Phone
	customer.City = in.City
	customer.District = in.District
	customer.PostCode = in.PostCode
	customer.IsLegalEntity = in.IsLegalEntity
	customer.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete müşteriyi siler. Fatura veya tahsilat kaydı olan müşteri silinemez;
// bu durumda ErrCustomerHasRecords döner ve hiçbir kayıt değişmez.
func (uc *CustomerUseCase) Delete(id string) error {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	docCount, err := uc.docRepo.CountByCustomer(id)
	if err != nil {
		return err
	}
	payCount, err := uc.paymentRepo.CountByCustomer(id)
	if err != nil {
		return err
	}
	if docCount > 0 || payCount > 0 {
		return domain.ErrCustomerHasRecords
	}
	return uc.customerRepo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
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
