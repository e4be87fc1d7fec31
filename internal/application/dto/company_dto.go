package dto

// CompanyInfoRequest firma ayarları güncelleme isteği.
type CompanyInfoRequest struct {
	Name      string `json:"name"`
	TaxNo     string `json:"tax_no"`
	TaxOffice string `json:"tax_office"`
	MersisNo  string `json:"mersis_no"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Website   string `json:"website"`
	LogoURL   string `json:"logo_url"`
}

// CompanyInfoResponse firma ayarları yanıtı.
type CompanyInfoResponse struct {
	Name      string `json:"name"`
	TaxNo     string `json:"tax_no,omitempty"`
	TaxOffice string `json:"tax_office,omitempty"`
	MersisNo  string `json:"mersis_no,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
	LogoURL   string `json:"logo_url,omitempty"`
}

// CreateCategoryRequest ürün kategorisi isteği.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse kategori yanıtı.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
