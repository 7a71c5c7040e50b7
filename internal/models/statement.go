package models

import "time"

// Cash sentinel statement identity. Manually entered cash expenses hang off
// this reserved period, which sits outside any real statement range and is
// never produced by the import pipeline.
const (
	CashCardName = "EFECTIVO"
	CashMonth    = 1
	CashYear     = 1900
)

// Statement is one imported batch of transactions for a card and period.
type Statement struct {
	ID          uint   `gorm:"primaryKey"`
	Month       int    `gorm:"not null;uniqueIndex:idx_statement_key"`
	Year        int    `gorm:"not null;uniqueIndex:idx_statement_key"`
	CardName    string `gorm:"size:64;not null;uniqueIndex:idx_statement_key"`
	Last4Digits string `gorm:"column:last4digits;size:4;uniqueIndex:idx_statement_key"`
	FilePath    string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsCash reports whether the statement is the reserved cash sentinel.
func (s *Statement) IsCash() bool {
	return s.Month == CashMonth && s.Year == CashYear && s.CardName == CashCardName
}
