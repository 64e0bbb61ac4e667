package bot

import (
	"fmt"
	"testing"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCategories(n int) []*entity.Category {
	categories := make([]*entity.Category, 0, n)
	for i := 1; i <= n; i++ {
		categories = append(categories, &entity.Category{ID: uint(i), Name: fmt.Sprintf("Category %d", i)})
	}

	return categories
}

func TestCategoriesKeyboard_FirstPage(t *testing.T) {
	markup := categoriesKeyboard(makeCategories(7), 1)

	// Five category rows, one nav row, one cart row.
	require.Len(t, markup.InlineKeyboard, 7)

	nav := markup.InlineKeyboard[5]
	// First page has no prev button: indicator plus next only.
	require.Len(t, nav, 2)
	assert.Equal(t, "1/2", nav[0].Text)
	assert.Equal(t, "categories:page:2", *nav[1].CallbackData)
}

func TestCategoriesKeyboard_LastPage(t *testing.T) {
	markup := categoriesKeyboard(makeCategories(7), 2)

	// Two category rows, one nav row, one cart row.
	require.Len(t, markup.InlineKeyboard, 4)

	nav := markup.InlineKeyboard[2]
	require.Len(t, nav, 2)
	assert.Equal(t, "categories:page:1", *nav[0].CallbackData)
	assert.Equal(t, "2/2", nav[1].Text)
}

func TestCategoriesKeyboard_MiddlePageHasBothArrows(t *testing.T) {
	markup := categoriesKeyboard(makeCategories(12), 2)

	nav := markup.InlineKeyboard[5]
	require.Len(t, nav, 3)
	assert.Equal(t, "categories:page:1", *nav[0].CallbackData)
	assert.Equal(t, "2/3", nav[1].Text)
	assert.Equal(t, "categories:page:3", *nav[2].CallbackData)
}

func TestCategoriesKeyboard_SinglePageHasNoNav(t *testing.T) {
	markup := categoriesKeyboard(makeCategories(3), 1)

	// Three category rows plus the cart row, no nav row.
	require.Len(t, markup.InlineKeyboard, 4)
	assert.Equal(t, actionViewCart, *markup.InlineKeyboard[3][0].CallbackData)
}

func TestCategoriesKeyboard_EmptyListingKeepsCartButton(t *testing.T) {
	markup := categoriesKeyboard(nil, 1)

	require.Len(t, markup.InlineKeyboard, 1)
	assert.Equal(t, actionViewCart, *markup.InlineKeyboard[0][0].CallbackData)
}

func TestSubCategoriesKeyboard_NavCarriesCategoryID(t *testing.T) {
	subCategories := make([]*entity.SubCategory, 0, 6)
	for i := 1; i <= 6; i++ {
		subCategories = append(subCategories, &entity.SubCategory{
			ID: uint(i), CategoryID: 42, Name: fmt.Sprintf("Sub %d", i)})
	}

	markup := subCategoriesKeyboard(subCategories, 42, 1)

	nav := markup.InlineKeyboard[5]
	require.Len(t, nav, 2)
	assert.Equal(t, "subcategory:42:page:2", *nav[1].CallbackData)

	back := markup.InlineKeyboard[6]
	assert.Equal(t, actionBackToCategories, *back[0].CallbackData)
}

func TestCartKeyboard_OneRemoveButtonPerLine(t *testing.T) {
	items := []entity.CartItem{
		{LineID: 1, Name: "Latte", Quantity: 2, Price: decimal.RequireFromString("250.50")},
		{LineID: 2, Name: "Croissant", Quantity: 1, Price: decimal.RequireFromString("120.00")},
	}

	markup := cartKeyboard(items)

	// Two remove rows, checkout row, categories row.
	require.Len(t, markup.InlineKeyboard, 4)
	assert.Equal(t, "remove_from_cart:1", *markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "remove_from_cart:2", *markup.InlineKeyboard[1][0].CallbackData)
	assert.Equal(t, actionCheckout, *markup.InlineKeyboard[2][0].CallbackData)
}

func TestCartText_ListsSubtotalsAndTotal(t *testing.T) {
	items := []entity.CartItem{
		{LineID: 1, Name: "Latte", Quantity: 2, Price: decimal.RequireFromString("250.50")},
		{LineID: 2, Name: "Croissant", Quantity: 1, Price: decimal.RequireFromString("120.00")},
	}

	text := cartText(items)

	assert.Contains(t, text, "Latte × 2 — 501.00")
	assert.Contains(t, text, "Croissant × 1 — 120.00")
	assert.Contains(t, text, "Total: 621.00")
}
