package dto

import "github.com/shopspring/decimal"

// StatementLine ekstredeki tek satır.
type StatementLine struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Kind        string          `json:"kind"` // INVOICE | COLLECTION
	Description string          `json:"description"`
	DocID       string          `json:"doc_id,omitempty"`
	Debit       decimal.Decimal `json:"debit"`  // Borç, kaydın para biriminde
	Credit      decimal.Decimal `json:"credit"` // Alacak, kaydın para biriminde
	Currency    string          `json:"currency"`
	BaseEffect  decimal.Decimal `json:"base_effect"` // TRY etkisi
	Balance     decimal.Decimal `json:"balance"`     // Yürüyen TRY bakiyesi
}

// StatementResponse tam geçmiş ekstresi. Balance pozitifse müşteri borçludur.
type StatementResponse struct {
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Lines        []StatementLine `json:"lines"`
	Balance      decimal.Decimal `json:"balance"`
}

// ReconciliationPreviewRequest dönem mutabakatı ön izleme isteği.
type ReconciliationPreviewRequest struct {
	CustomerID  string `json:"customer_id" query:"customer_id"`
	PeriodStart string `json:"period_start" query:"period_start"`
	PeriodEnd   string `json:"period_end" query:"period_end"`
}

// ReconciliationPreviewResponse dönem mutabakatı hesap sonucu.
type ReconciliationPreviewResponse struct {
	CustomerID     string          `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	PeriodStart    string          `json:"period_start"`
	PeriodEnd      string          `json:"period_end"`
	BroughtForward decimal.Decimal `json:"brought_forward"` // Devreden bakiye
	Lines          []StatementLine `json:"lines"`
	FinalBalance   decimal.Decimal `json:"final_balance"`
}

// SaveReconciliationRequest mutabakat anlık görüntüsü kaydetme isteği.
type SaveReconciliationRequest struct {
	CustomerID  string `json:"customer_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	Status      string `json:"status"` // AGREED | NOT_AGREED
	Note        string `json:"note"`
}

// ReconciliationResponse kalıcı mutabakat kaydı.
type ReconciliationResponse struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	Date        string          `json:"date"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	Balance     decimal.Decimal `json:"balance"`
	Status      string          `json:"status"`
	Note        string          `json:"note,omitempty"`
	CreatedAt   string          `json:"created_at"`
}
