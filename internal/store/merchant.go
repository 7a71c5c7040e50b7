package store

import (
	"errors"
	"fmt"

	"github.com/alkimer/expenses/internal/models"

	"gorm.io/gorm"
)

// MerchantStore resolves description strings to stable merchant identities.
type MerchantStore struct {
	db *gorm.DB
}

func NewMerchantStore(db *gorm.DB) *MerchantStore {
	return &MerchantStore{db: db}
}

// GetOrCreate looks a merchant up by exact name and creates it under the
// default category on first sight. Repeated imports of the same description
// always resolve to the same merchant.
func (s *MerchantStore) GetOrCreate(name string) (*models.Merchant, error) {
	var merchant models.Merchant
	err := s.db.Where("name = ?", name).First(&merchant).Error
	if err == nil {
		return &merchant, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find merchant %q: %w", name, err)
	}

	var def models.Category
	if err := s.db.Where("name = ?", models.DefaultCategoryName).First(&def).Error; err != nil {
		return nil, fmt.Errorf("default category: %w", err)
	}
	merchant = models.Merchant{Name: name, CategoryID: def.ID}
	if err := s.db.Create(&merchant).Error; err != nil {
		return nil, fmt.Errorf("create merchant %q: %w", name, err)
	}
	return &merchant, nil
}

// SetCategory reassigns a merchant's category. The mapping lives on the
// merchant, so all past and future transactions follow immediately.
func (s *MerchantStore) SetCategory(merchantID, categoryID uint) error {
	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: categoría %d", ErrNotFound, categoryID)
		}
		return fmt.Errorf("find category %d: %w", categoryID, err)
	}

	result := s.db.Model(&models.Merchant{}).
		Where("id = ?", merchantID).
		Update("category_id", categoryID)
	if result.Error != nil {
		return fmt.Errorf("set category of merchant %d: %w", merchantID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: comercio %d", ErrNotFound, merchantID)
	}
	return nil
}

// Category returns the category a merchant currently maps to.
func (s *MerchantStore) Category(merchantID uint) (*models.Category, error) {
	var category models.Category
	err := s.db.
		Joins("JOIN merchants ON merchants.category_id = categories.id").
		Where("merchants.id = ?", merchantID).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: comercio %d", ErrNotFound, merchantID)
		}
		return nil, fmt.Errorf("category of merchant %d: %w", merchantID, err)
	}
	return &category, nil
}

// MerchantWithCategory is a merchant row joined with its category name.
type MerchantWithCategory struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	CategoryID   uint   `json:"category_id"`
	CategoryName string `json:"category_name"`
}

// List returns all merchants with their category names, ordered by name.
func (s *MerchantStore) List() ([]MerchantWithCategory, error) {
	var rows []MerchantWithCategory
	err := s.db.Model(&models.Merchant{}).
		Select("merchants.id, merchants.name, merchants.category_id, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = merchants.category_id").
		Order("merchants.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list merchants: %w", err)
	}
	return rows, nil
}
