package bot

import (
	"fmt"
	"os"
	"strings"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	"github.com/Dim-Aks/Bot-shop/internal/usecase"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// productCardText renders the caption of a product card.
func productCardText(product *entity.Product) string {
	var b strings.Builder
	b.WriteString(product.Name)
	if product.Description != "" {
		b.WriteString("\n\n")
		b.WriteString(product.Description)
	}
	fmt.Fprintf(&b, "\n\nPrice: %s", product.Price.StringFixed(2))

	return b.String()
}

// cartText renders the cart listing with per-line subtotals and the total.
func cartText(items []entity.CartItem) string {
	var b strings.Builder
	b.WriteString("🛒 Your cart:\n\n")
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s × %d — %s\n",
			i+1, item.Name, item.Quantity, item.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal: %s", entity.CartTotal(items).StringFixed(2))

	return b.String()
}

// orderSummaryText renders the payment confirmation shown after the
// delivery form.
func orderSummaryText(summary *usecase.OrderSummary) string {
	var b strings.Builder
	b.WriteString("📦 Your order:\n\n")
	for i, item := range summary.Items {
		fmt.Fprintf(&b, "%d. %s × %d — %s\n",
			i+1, item.Name, item.Quantity, item.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n\nName: %s\nAddress: %s\nPhone: %s",
		summary.Total.StringFixed(2), summary.Name, summary.Address, summary.Phone)

	return b.String()
}

// photoFile resolves a stored media reference: a path on disk is uploaded,
// anything else is treated as an already-uploaded file ID.
func photoFile(photo string) tgbotapi.RequestFileData {
	if _, err := os.Stat(photo); err == nil {
		return tgbotapi.FilePath(photo)
	}

	return tgbotapi.FileID(photo)
}
