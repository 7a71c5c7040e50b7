package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/alkimer/expenses/internal/models"

	"gorm.io/gorm"
)

// TransactionStore owns persisted transaction rows.
type TransactionStore struct {
	db *gorm.DB
}

func NewTransactionStore(db *gorm.DB) *TransactionStore {
	return &TransactionStore{db: db}
}

// BulkInsert writes all rows of one imported statement atomically.
func (s *TransactionStore) BulkInsert(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("insert transactions: %w", err)
		}
		return nil
	})
}

// Create inserts a single transaction, used for manual cash expenses.
func (s *TransactionStore) Create(transaction *models.Transaction) error {
	if err := s.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

// TransactionRow is a transaction joined with its merchant and category,
// the shape the listing endpoints return.
type TransactionRow struct {
	ID           uint      `json:"id"`
	Date         time.Time `json:"date"`
	MerchantID   uint      `json:"merchant_id"`
	MerchantName string    `json:"merchant_name"`
	CategoryID   uint      `json:"category_id"`
	CategoryName string    `json:"category_name"`
	AmountCents  int64     `json:"amount_cents"`
	Installment  *int      `json:"installment"`
}

// ListByStatement returns a statement's transactions in date order.
func (s *TransactionStore) ListByStatement(statementID uint) ([]TransactionRow, error) {
	var rows []TransactionRow
	err := s.db.Model(&models.Transaction{}).
		Select(`transactions.id, transactions.date, transactions.merchant_id,
			merchants.name AS merchant_name, categories.id AS category_id,
			categories.name AS category_name, transactions.amount_cents,
			transactions.installment`).
		Joins("JOIN merchants ON merchants.id = transactions.merchant_id").
		Joins("JOIN categories ON categories.id = merchants.category_id").
		Where("transactions.statement_id = ?", statementID).
		Order("transactions.date ASC, transactions.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions of statement %d: %w", statementID, err)
	}
	return rows, nil
}

// Get returns one transaction by id.
func (s *TransactionStore) Get(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: movimiento %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("find transaction %d: %w", id, err)
	}
	return &transaction, nil
}

// Delete removes one transaction.
func (s *TransactionStore) Delete(id uint) error {
	result := s.db.Delete(&models.Transaction{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete transaction %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: movimiento %d", ErrNotFound, id)
	}
	return nil
}
