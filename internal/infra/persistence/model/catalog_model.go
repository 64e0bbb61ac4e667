package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryModel is the GORM model for the categories table.
type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	SubCategories []SubCategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Products      []ProductModel     `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the default GORM table name.
func (CategoryModel) TableName() string {
	return "categories"
}

// SubCategoryModel is the GORM model for the sub_categories table.
type SubCategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	CategoryID  uint   `gorm:"index;not null"`
	Name        string `gorm:"size:100;not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default GORM table name.
func (SubCategoryModel) TableName() string {
	return "sub_categories"
}

// ProductModel is the GORM model for the products table.
type ProductModel struct {
	ID            uint   `gorm:"primaryKey"`
	CategoryID    uint   `gorm:"index;not null"`
	SubCategoryID *uint  `gorm:"index"`
	Name          string `gorm:"size:255;not null"`
	Description   string
	Photo         string
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	SubCategory *SubCategoryModel `gorm:"foreignKey:SubCategoryID"`
}

// TableName overrides the default GORM table name.
func (ProductModel) TableName() string {
	return "products"
}
