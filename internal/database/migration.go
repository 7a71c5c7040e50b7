package database

import (
	"fmt"

	"github.com/alkimer/expenses/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Merchant{},
		&models.Statement{},
		&models.Transaction{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Seed ensures the rows the rest of the system relies on: the protected
// default category and the reserved cash statement. Idempotent.
func Seed(db *gorm.DB) error {
	defaultCategory := models.Category{Name: models.DefaultCategoryName}
	if err := db.Where("name = ?", models.DefaultCategoryName).
		FirstOrCreate(&defaultCategory).Error; err != nil {
		return fmt.Errorf("seed default category: %w", err)
	}

	cash := models.Statement{
		Month:    models.CashMonth,
		Year:     models.CashYear,
		CardName: models.CashCardName,
	}
	if err := db.Where("month = ? AND year = ? AND card_name = ?",
		models.CashMonth, models.CashYear, models.CashCardName).
		FirstOrCreate(&cash).Error; err != nil {
		return fmt.Errorf("seed cash statement: %w", err)
	}
	return nil
}
