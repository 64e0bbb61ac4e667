package model

import "github.com/shopspring/decimal"

// CartLineModel is the GORM model for the cart_lines table. The composite
// unique index enforces the one-line-per-(user, product) invariant at the
// storage level.
type CartLineModel struct {
	ID        uint            `gorm:"primaryKey"`
	UserID    uint            `gorm:"uniqueIndex:idx_cart_user_product;not null"`
	ProductID uint            `gorm:"uniqueIndex:idx_cart_user_product;not null"`
	Quantity  int             `gorm:"not null;default:1"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	User    *UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the default GORM table name.
func (CartLineModel) TableName() string {
	return "cart_lines"
}
