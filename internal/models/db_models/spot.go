package db_models

import (
	"time"

	"github.com/lib/pq"
)

// Spot is one catalogued tourist destination. The catalog is seeded at
// startup and never mutated afterwards; IDs are stable slugs like
// "goryokaku".
type Spot struct {
	ID           string         `gorm:"primaryKey"`
	Name         string         `gorm:"not null"`
	Category     string
	Description  string
	Image        string
	DetailsForAI string
	Features     pq.StringArray `gorm:"type:text[]"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
}
