package models

import (
	"time"

	"github.com/google/uuid"
)

// Approval states for taxonomy records. There is no third state; the
// status endpoint flips between these two.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

type Category struct {
	ID           uuid.UUID `json:"id" db:"id"`
	CategoryName string    `json:"category_name" db:"category_name"`
	Image        *string   `json:"image" db:"image"`
	Status       string    `json:"status" db:"status"`
	IsFeatured   int       `json:"is_featured" db:"is_featured"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	// SubCategoryCount is populated by list queries only.
	SubCategoryCount int `json:"sub_category_count" db:"-"`
}
