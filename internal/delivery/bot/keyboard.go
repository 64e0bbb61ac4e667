package bot

import (
	"fmt"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// navRow builds the prev / page-indicator / next row. The indicator is a
// no-op button so taps on it do nothing.
func navRow(page, pages int, tokenFor func(page int) string) []tgbotapi.InlineKeyboardButton {
	row := make([]tgbotapi.InlineKeyboardButton, 0, 3)
	if page > 1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("⬅️", tokenFor(page-1)))
	}
	row = append(row, tgbotapi.NewInlineKeyboardButtonData(
		fmt.Sprintf("%d/%d", page, pages), actionNoop))
	if page < pages {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("➡️", tokenFor(page+1)))
	}

	return row
}

// categoriesKeyboard renders one page of the category menu.
func categoriesKeyboard(categories []*entity.Category, page int) tgbotapi.InlineKeyboardMarkup {
	pages := pageCount(len(categories), categoriesPageSize)
	page = clampPage(len(categories), categoriesPageSize, page)
	lo, hi := pageSlice(len(categories), categoriesPageSize, page)

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, category := range categories[lo:hi] {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(category.Name, categoryToken(category.ID))))
	}
	if pages > 1 {
		rows = append(rows, navRow(page, pages, categoriesPageToken))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🛒 Cart", actionViewCart)))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// subCategoriesKeyboard renders one page of a category's subcategory menu.
func subCategoriesKeyboard(subCategories []*entity.SubCategory, categoryID uint, page int) tgbotapi.InlineKeyboardMarkup {
	pages := pageCount(len(subCategories), subCategoriesPageSize)
	page = clampPage(len(subCategories), subCategoriesPageSize, page)
	lo, hi := pageSlice(len(subCategories), subCategoriesPageSize, page)

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, subCategory := range subCategories[lo:hi] {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(subCategory.Name, subCategoryToken(subCategory.ID))))
	}
	if pages > 1 {
		rows = append(rows, navRow(page, pages, func(p int) string {
			return subCategoriesPageToken(categoryID, p)
		}))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Categories", actionBackToCategories)))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// productCardKeyboard is attached to a single product card.
func productCardKeyboard(productID uint) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛒 Add to cart", addToCartToken(productID))))
}

// productsNavKeyboard navigates the product listing of a subcategory.
func productsNavKeyboard(subCategory *entity.SubCategory, total, page int) tgbotapi.InlineKeyboardMarkup {
	pages := pageCount(total, productsPageSize)
	page = clampPage(total, productsPageSize, page)

	var rows [][]tgbotapi.InlineKeyboardButton
	if pages > 1 {
		rows = append(rows, navRow(page, pages, func(p int) string {
			return productsPageToken(subCategory.ID, p)
		}))
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", categoryToken(subCategory.CategoryID))),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛒 Cart", actionViewCart)))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// cartKeyboard offers per-line removal plus checkout.
func cartKeyboard(items []entity.CartItem) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range items {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("❌ %s", item.Name), removeFromCartToken(item.LineID))))
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Checkout", actionCheckout)),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Categories", actionBackToCategories)))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// emptyCartKeyboard is shown when there is nothing to remove or order.
func emptyCartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Categories", actionBackToCategories)))
}

// paymentKeyboard concludes the delivery form.
func paymentKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💳 Pay", actionPay),
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", actionCancelOrder)))
}
