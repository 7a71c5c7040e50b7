package models

import "time"

// Merchant is the deduplicated identity of a statement description string.
// Two transactions with the same description always resolve to the same
// merchant, so reassigning its category applies retroactively.
type Merchant struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:128;uniqueIndex;not null"`
	CategoryID uint   `gorm:"index;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
