package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the top level of the catalog hierarchy.
type Category struct {
	ID          uint
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SubCategory belongs to exactly one Category.
type SubCategory struct {
	ID          uint
	CategoryID  uint
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Product belongs to one Category and optionally one SubCategory.
// Price is a fixed-point amount with two decimal places.
type Product struct {
	ID            uint
	CategoryID    uint
	SubCategoryID *uint
	Name          string
	Description   string
	Photo         string // File path or Telegram file ID of the product photo, may be empty.
	Price         decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
