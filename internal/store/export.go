package store

import (
	"fmt"
	"time"

	"github.com/alkimer/expenses/internal/models"

	"gorm.io/gorm"
)

// ExportRow is one transaction joined with everything the spreadsheet
// export needs.
type ExportRow struct {
	Year         int
	Month        int
	CardName     string
	Date         time.Time
	MerchantName string
	AmountCents  int64
	Installment  *int
	CategoryName string
}

// ExportStore reads the full dataset for spreadsheet export.
type ExportStore struct {
	db *gorm.DB
}

func NewExportStore(db *gorm.DB) *ExportStore {
	return &ExportStore{db: db}
}

// All returns every transaction, newest statement first and date order
// within each statement.
func (s *ExportStore) All() ([]ExportRow, error) {
	var rows []ExportRow
	err := s.db.Model(&models.Transaction{}).
		Select(`statements.year, statements.month, statements.card_name,
			transactions.date, merchants.name AS merchant_name,
			transactions.amount_cents, transactions.installment,
			categories.name AS category_name`).
		Joins("JOIN statements ON statements.id = transactions.statement_id").
		Joins("JOIN merchants ON merchants.id = transactions.merchant_id").
		Joins("JOIN categories ON categories.id = merchants.category_id").
		Order("statements.year DESC, statements.month DESC, statements.card_name ASC, transactions.date ASC, transactions.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("export rows: %w", err)
	}
	return rows, nil
}
