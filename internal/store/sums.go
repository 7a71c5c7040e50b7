package store

import (
	"fmt"

	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

// CategorySum is the spend total of one category.
type CategorySum struct {
	CategoryID   uint   `json:"category_id"`
	CategoryName string `json:"category_name"`
	TotalCents   int64  `json:"total_cents"`
}

// Total returns the sum as a decimal amount.
func (c CategorySum) Total() decimal.Decimal {
	return decimal.New(c.TotalCents, -2)
}

// SumStore aggregates transaction amounts by category.
type SumStore struct {
	db *gorm.DB
}

func NewSumStore(db *gorm.DB) *SumStore {
	return &SumStore{db: db}
}

const sumQuery = `
SELECT c.id AS category_id, c.name AS category_name,
       SUM(t.amount_cents) AS total_cents
FROM transactions t
JOIN merchants m ON m.id = t.merchant_id
JOIN categories c ON c.id = m.category_id
%s
GROUP BY c.id, c.name
ORDER BY total_cents DESC, c.id ASC`

// ForStatement sums one statement's transactions by category, largest first.
func (s *SumStore) ForStatement(statementID uint) ([]CategorySum, error) {
	var sums []CategorySum
	query := fmt.Sprintf(sumQuery, "WHERE t.statement_id = ?")
	if err := s.db.Raw(query, statementID).Scan(&sums).Error; err != nil {
		return nil, fmt.Errorf("sums of statement %d: %w", statementID, err)
	}
	return sums, nil
}

// ForAll sums every transaction in the database by category, largest first.
func (s *SumStore) ForAll() ([]CategorySum, error) {
	var sums []CategorySum
	query := fmt.Sprintf(sumQuery, "")
	if err := s.db.Raw(query).Scan(&sums).Error; err != nil {
		return nil, fmt.Errorf("sums: %w", err)
	}
	return sums, nil
}
