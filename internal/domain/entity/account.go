package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Hesap türleri.
const (
	AccountCash = "CASH" // Kasa
	AccountBank = "BANK" // Banka hesabı
)

// Account bir kasa veya banka hesabını temsil eder.
//
// Balance türetilmiş bir önbellektir: gerçeğin kaynağı Transaction kayıtlarıdır.
// Her işlem yazımı hesabın bakiyesini aynı veritabanı transaction'ı içinde
// günceller; tutarsızlık şüphesinde bakiye işlemlerin toplamından yeniden
// kurulabilir.
type Account struct {
	ID        string
	Name      string
	Type      string
	Currency  string
	Balance   decimal.Decimal
	IBAN      string
	BankName  string
	Branch    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// İşlem türleri.
const (
	TxDeposit    = "DEPOSIT"    // Para girişi
	TxWithdrawal = "WITHDRAWAL" // Para çıkışı
	TxTransfer   = "TRANSFER"   // Virman bacağı
	TxPayment    = "PAYMENT"    // Tedarikçi/gider ödemesi
	TxCollection = "COLLECTION" // Müşteri tahsilatı
)

// Transaction bir hesaba yazılan tek bir hareketi temsil eder.
// Amount işaretlidir: çıkışlar negatif. BalanceAfter yazım anında alınan
// bakiye anlık görüntüsüdür, sonradan yeniden hesaplanmaz.
type Transaction struct {
	ID           string
	AccountID    string
	Date         time.Time
	Amount       decimal.Decimal
	Type         string
	Description  string
	RelatedID    string // Virman eşi, tahsilat veya çek referansı
	BalanceAfter decimal.Decimal
	CreatedAt    time.Time
}
