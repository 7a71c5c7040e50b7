package store

import (
	"errors"
	"fmt"

	"github.com/alkimer/expenses/internal/models"

	"gorm.io/gorm"
)

// StatementStore owns statement rows and the cascade to their transactions.
type StatementStore struct {
	db *gorm.DB
}

func NewStatementStore(db *gorm.DB) *StatementStore {
	return &StatementStore{db: db}
}

// Create inserts a statement. The (month, year, card, last4) key is unique;
// a duplicate leaves no partial state behind.
func (s *StatementStore) Create(month, year int, cardName, last4Digits, filePath string) (*models.Statement, error) {
	var count int64
	err := s.db.Model(&models.Statement{}).
		Where("month = ? AND year = ? AND card_name = ? AND last4digits = ?",
			month, year, cardName, last4Digits).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("check statement: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: %02d/%d %s", ErrDuplicateStatement, month, year, cardName)
	}

	statement := models.Statement{
		Month:       month,
		Year:        year,
		CardName:    cardName,
		Last4Digits: last4Digits,
		FilePath:    filePath,
	}
	if err := s.db.Create(&statement).Error; err != nil {
		return nil, fmt.Errorf("create statement %02d/%d %s: %w", month, year, cardName, err)
	}
	return &statement, nil
}

// Get returns one statement by id.
func (s *StatementStore) Get(id uint) (*models.Statement, error) {
	var statement models.Statement
	if err := s.db.First(&statement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: resumen %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("find statement %d: %w", id, err)
	}
	return &statement, nil
}

// List returns all statements, newest period first.
func (s *StatementStore) List() ([]models.Statement, error) {
	var statements []models.Statement
	err := s.db.Order("year DESC, month DESC, card_name ASC").Find(&statements).Error
	if err != nil {
		return nil, fmt.Errorf("list statements: %w", err)
	}
	return statements, nil
}

// Update changes a statement's period or card name, keeping the unique key
// intact. The cash sentinel cannot be modified.
func (s *StatementStore) Update(id uint, month, year int, cardName string) error {
	statement, err := s.Get(id)
	if err != nil {
		return err
	}
	if statement.IsCash() {
		return fmt.Errorf("%w: resumen %d", ErrNotFound, id)
	}

	var count int64
	err = s.db.Model(&models.Statement{}).
		Where("month = ? AND year = ? AND card_name = ? AND last4digits = ? AND id <> ?",
			month, year, cardName, statement.Last4Digits, id).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("check statement: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %02d/%d %s", ErrDuplicateStatement, month, year, cardName)
	}

	statement.Month = month
	statement.Year = year
	statement.CardName = cardName
	if err := s.db.Save(statement).Error; err != nil {
		return fmt.Errorf("update statement %d: %w", id, err)
	}
	return nil
}

// Delete removes a statement and all its transactions.
func (s *StatementStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var statement models.Statement
		if err := tx.First(&statement, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: resumen %d", ErrNotFound, id)
			}
			return fmt.Errorf("find statement %d: %w", id, err)
		}
		if err := tx.Where("statement_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("delete transactions of statement %d: %w", id, err)
		}
		if err := tx.Delete(&models.Statement{}, id).Error; err != nil {
			return fmt.Errorf("delete statement %d: %w", id, err)
		}
		return nil
	})
}

// Cash returns the reserved statement manual cash expenses belong to.
func (s *StatementStore) Cash() (*models.Statement, error) {
	var statement models.Statement
	err := s.db.Where("month = ? AND year = ? AND card_name = ?",
		models.CashMonth, models.CashYear, models.CashCardName).
		First(&statement).Error
	if err != nil {
		return nil, fmt.Errorf("cash statement: %w", err)
	}
	return &statement, nil
}
