package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tahsilat yöntemleri.
const (
	MethodBank  = "BANK"
	MethodCash  = "CASH"
	MethodCheck = "CHECK"
)

// Payment müşteriden yapılan bir tahsilatı temsil eder.
//
// DocID doluysa tahsilat belirli bir faturaya, boşsa carinin genel bakiyesine
// işlenir. AccountID çek tahsilatlarında boş kalır; çek tahsil edilene kadar
// kasaya/bankaya giriş olmaz. ExchangeRate kayıt anında dondurulur.
type Payment struct {
	ID           string
	CustomerID   string
	DocID        string // İsteğe bağlı fatura referansı
	AccountID    string // BANK/CASH için zorunlu, CHECK için boş
	CheckID      string // Yöntem CHECK ise oluşturulan çekin referansı
	Date         time.Time
	Amount       decimal.Decimal
	Currency     string
	ExchangeRate decimal.Decimal
	Method       string
	Description  string
	CreatedAt    time.Time
}
