package dto

// PageRequest listeleme sayfalaması.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage sıfır değerlere varsayılanları uygular.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse HTTP hata gövdesi.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
