package store

import (
	"errors"
	"fmt"

	"github.com/alkimer/expenses/internal/models"

	"gorm.io/gorm"
)

// CategoryStore owns category rows and the protected-default rule.
type CategoryStore struct {
	db *gorm.DB
}

func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// Create inserts a new category. Names are unique.
func (s *CategoryStore) Create(name string) (*models.Category, error) {
	var count int64
	if err := s.db.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check category %q: %w", name, err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, name)
	}
	category := models.Category{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("create category %q: %w", name, err)
	}
	return &category, nil
}

// List returns all categories ordered by name.
func (s *CategoryStore) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Default returns the protected default category.
func (s *CategoryStore) Default() (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("name = ?", models.DefaultCategoryName).First(&category).Error; err != nil {
		return nil, fmt.Errorf("default category: %w", err)
	}
	return &category, nil
}

// Delete removes a category. The default category is protected; for any
// other category, merchants still assigned to it are moved to the default
// first, so no merchant ever references a missing category.
func (s *CategoryStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var def models.Category
		if err := tx.Where("name = ?", models.DefaultCategoryName).First(&def).Error; err != nil {
			return fmt.Errorf("default category: %w", err)
		}
		if id == def.ID {
			return ErrDefaultCategory
		}

		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: categoría %d", ErrNotFound, id)
			}
			return fmt.Errorf("find category %d: %w", id, err)
		}

		if err := tx.Model(&models.Merchant{}).
			Where("category_id = ?", id).
			Update("category_id", def.ID).Error; err != nil {
			return fmt.Errorf("reassign merchants of category %d: %w", id, err)
		}
		if err := tx.Delete(&models.Category{}, id).Error; err != nil {
			return fmt.Errorf("delete category %d: %w", id, err)
		}
		return nil
	})
}
