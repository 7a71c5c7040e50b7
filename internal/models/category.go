package models

import "time"

// DefaultCategoryName is the protected fallback category. Merchants seen for
// the first time are filed under it, and it can never be deleted.
const DefaultCategoryName = "NO ASIGNADA"

// Category groups merchants for aggregation.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:64;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
