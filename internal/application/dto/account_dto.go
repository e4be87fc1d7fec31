package dto

import "github.com/shopspring/decimal"

// CreateAccountRequest yeni kasa/banka hesabı isteği.
type CreateAccountRequest struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"` // CASH | BANK
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"` // Açılış bakiyesi
	IBAN     string          `json:"iban"`
	BankName string          `json:"bank_name"`
	Branch   string          `json:"branch"`
}

// AccountResponse hesap yanıtı.
type AccountResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	IBAN     string          `json:"iban,omitempty"`
	BankName string          `json:"bank_name,omitempty"`
	Branch   string          `json:"branch,omitempty"`
}

// RecordTransactionRequest hesaba manuel hareket isteği (giriş/çıkış).
// Amount pozitif verilir; işaret Type'a göre uygulanır.
type RecordTransactionRequest struct {
	Type        string          `json:"type"` // DEPOSIT | WITHDRAWAL | PAYMENT | COLLECTION
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// TransferRequest hesaplar arası virman isteği. İki hesabın para birimi aynı
// olmalıdır; iki bacak tek transaction içinde yazılır.
type TransferRequest struct {
	FromAccountID string          `json:"from_account_id"`
	ToAccountID   string          `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
}

// TransactionResponse hesap hareketi yanıtı.
type TransactionResponse struct {
	ID           string          `json:"id"`
	AccountID    string          `json:"account_id"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Type         string          `json:"type"`
	Description  string          `json:"description,omitempty"`
	RelatedID    string          `json:"related_id,omitempty"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
}
