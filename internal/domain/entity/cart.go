package entity

import "github.com/shopspring/decimal"

// CartLine is one row of a user's cart: a quantity of a single product.
// There is at most one line per (user, product) pair; repeat adds accumulate
// into Quantity. Price is snapshotted from the product at the time of the
// first add and is deliberately NOT refreshed when the catalog price changes.
type CartLine struct {
	ID        uint
	UserID    uint // References User.ID (the internal key, not the Telegram ID).
	ProductID uint
	Quantity  int
	Price     decimal.Decimal // Unit price at add time.
}

// CartItem is a cart line joined with the product fields the bot renders.
type CartItem struct {
	LineID   uint
	Name     string
	Photo    string
	Quantity int
	Price    decimal.Decimal // Unit price snapshot from the line, not the product.
}

// Subtotal returns quantity times the snapshotted unit price.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartTotal sums the subtotals of all items.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	return total
}
