package dto

import "github.com/shopspring/decimal"

// CreatePaymentRequest yeni tahsilat isteği.
//
// Method BANK/CASH ise AccountID zorunludur ve tahsilat aynı anda hesaba
// COLLECTION hareketi yazar. Method CHECK ise çek alanları zorunludur ve
// PENDING durumda bir çek oluşturulur; hesap hareketi çek tahsil edilince
// yazılır.
type CreatePaymentRequest struct {
	CustomerID   string          `json:"customer_id"`
	DocID        string          `json:"doc_id"`
	AccountID    string          `json:"account_id"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	Method       string          `json:"method"`
	Description  string          `json:"description"`

	// Çek alanları (Method = CHECK).
	CheckNumber string `json:"check_number"`
	BankName    string `json:"bank_name"`
	Drawer      string `json:"drawer"` // Keşideci
	DueDate     string `json:"due_date"`
}

// PaymentResponse tahsilat yanıtı.
type PaymentResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	DocID        string          `json:"doc_id,omitempty"`
	AccountID    string          `json:"account_id,omitempty"`
	CheckID      string          `json:"check_id,omitempty"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	Method       string          `json:"method"`
	Description  string          `json:"description,omitempty"`
}

// CheckResponse çek yanıtı.
type CheckResponse struct {
	ID          string          `json:"id"`
	CheckNumber string          `json:"check_number"`
	BankName    string          `json:"bank_name"`
	Drawer      string          `json:"drawer"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	IssueDate   string          `json:"issue_date"`
	DueDate     string          `json:"due_date"`
	Status      string          `json:"status"`
	CustomerID  string          `json:"customer_id"`
	Description string          `json:"description,omitempty"`
}

// UpdateCheckStatusRequest çek durum geçişi isteği. Status COLLECTED ise
// AccountID zorunludur: çek tutarı o hesaba giriş olarak yazılır.
type UpdateCheckStatusRequest struct {
	Status    string `json:"status"`
	AccountID string `json:"account_id"`
}
