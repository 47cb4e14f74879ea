package models

import (
	"time"

	"github.com/google/uuid"
)

// SubCategory belongs to exactly one Category. The repository enforces
// the foreign key; a subcategory never outlives its parent reference.
type SubCategory struct {
	ID              uuid.UUID `json:"id" db:"id"`
	CategoryID      uuid.UUID `json:"category_id" db:"category_id"`
	SubCategoryName string    `json:"sub_category_name" db:"sub_category_name"`
	Image           *string   `json:"image" db:"image"`
	Status          string    `json:"status" db:"status"`
	IsFeatured      int       `json:"is_featured" db:"is_featured"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`

	// CategoryName is the joined parent name, populated by list queries only.
	CategoryName string `json:"category_name,omitempty" db:"-"`
}
