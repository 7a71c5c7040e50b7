package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a persisted statement line. Amounts are stored as signed
// cents so SQL sums stay exact; decimal values only exist at the edges.
type Transaction struct {
	ID          uint      `gorm:"primaryKey"`
	StatementID uint      `gorm:"index;not null"`
	MerchantID  uint      `gorm:"index;not null"`
	Date        time.Time `gorm:"index;not null"`
	AmountCents int64     `gorm:"not null"`
	Installment *int
	CreatedAt   time.Time
}

// Amount returns the stored cents as a two-decimal value.
func (t *Transaction) Amount() decimal.Decimal {
	return decimal.New(t.AmountCents, -2)
}

// Cents converts a two-decimal amount to stored cents.
func Cents(d decimal.Decimal) int64 {
	return d.Shift(2).IntPart()
}
