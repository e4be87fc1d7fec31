package dto

// CreateCustomerRequest yeni cari hesap isteği.
type CreateCustomerRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	TaxNo         string `json:"tax_no"`
	TaxOffice     string `json:"tax_office"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	City          string `json:"city"`
	District      string `json:"district"`
	PostCode      string `json:"post_code"`
	IsLegalEntity bool   `json:"is_legal_entity"`
}

// UpdateCustomerRequest cari hesap güncelleme isteği.
type UpdateCustomerRequest = CreateCustomerRequest

// CustomerResponse cari hesap yanıtı.
type CustomerResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	TaxNo         string `json:"tax_no"`
	TaxOffice     string `json:"tax_office"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	City          string `json:"city"`
	District      string `json:"district"`
	PostCode      string `json:"post_code"`
	IsLegalEntity bool   `json:"is_legal_entity"`
}
