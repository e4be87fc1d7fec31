package dto

// ImportResultResponse CSV aktarımının özeti.
type ImportResultResponse struct {
	TotalRows        int      `json:"total_rows"`
	Imported         int      `json:"imported"`
	CustomersCreated int      `json:"customers_created"`
	DocumentIDs      []string `json:"document_ids"`
}
