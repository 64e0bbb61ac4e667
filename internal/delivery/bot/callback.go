package bot

import (
	"fmt"
	"strconv"
	"strings"
)

// Callback actions carried in inline keyboard button data. Tokens are short
// because Telegram caps callback data at 64 bytes.
const (
	actionNoop             = "noop"
	actionViewCart         = "view_cart"
	actionCheckout         = "checkout"
	actionPay              = "pay"
	actionCancelOrder      = "cancel_order"
	actionBackToCategories = "back_to_categories"
	actionCategoriesPage   = "categories"
	actionOpenCategory     = "category"
	actionOpenSubCategory  = "subcategory"
	actionSubCategoryPage  = "subcategory_page"
	actionProductsPage     = "products"
	actionOpenProduct      = "product"
	actionAddToCart        = "add_to_cart"
	actionRemoveFromCart   = "remove_from_cart"
)

// callbackData is a parsed inline button token.
type callbackData struct {
	action string
	id     uint // Entity the action applies to, when the token carries one.
	page   int  // 1-based page number for pagination actions.
}

func categoriesPageToken(page int) string {
	return fmt.Sprintf("categories:page:%d", page)
}

func categoryToken(id uint) string {
	return fmt.Sprintf("category:%d", id)
}

func subCategoriesPageToken(categoryID uint, page int) string {
	return fmt.Sprintf("subcategory:%d:page:%d", categoryID, page)
}

func subCategoryToken(id uint) string {
	return fmt.Sprintf("subcategory:%d", id)
}

func productsPageToken(subCategoryID uint, page int) string {
	return fmt.Sprintf("products:%d:page:%d", subCategoryID, page)
}

func productToken(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

func addToCartToken(productID uint) string {
	return fmt.Sprintf("add_to_cart:%d", productID)
}

func removeFromCartToken(lineID uint) string {
	return fmt.Sprintf("remove_from_cart:%d", lineID)
}

// parseCallback decodes inline button data. Unknown or malformed tokens
// return false; the dispatcher ignores them.
func parseCallback(data string) (callbackData, bool) {
	parts := strings.Split(data, ":")

	switch parts[0] {
	case actionNoop, actionViewCart, actionCheckout, actionPay,
		actionCancelOrder, actionBackToCategories:
		if len(parts) != 1 {
			return callbackData{}, false
		}

		return callbackData{action: parts[0]}, true

	case actionCategoriesPage:
		// categories:page:<n>
		if len(parts) != 3 || parts[1] != "page" {
			return callbackData{}, false
		}
		page, err := strconv.Atoi(parts[2])
		if err != nil || page < 1 {
			return callbackData{}, false
		}

		return callbackData{action: actionCategoriesPage, page: page}, true

	case actionOpenCategory, actionOpenProduct, actionAddToCart, actionRemoveFromCart:
		// <action>:<id>
		if len(parts) != 2 {
			return callbackData{}, false
		}
		id, ok := parseID(parts[1])
		if !ok {
			return callbackData{}, false
		}

		return callbackData{action: parts[0], id: id}, true

	case actionOpenSubCategory:
		// subcategory:<id> opens the products listing;
		// subcategory:<categoryID>:page:<n> paginates the subcategory menu.
		switch len(parts) {
		case 2:
			id, ok := parseID(parts[1])
			if !ok {
				return callbackData{}, false
			}

			return callbackData{action: actionOpenSubCategory, id: id}, true
		case 4:
			if parts[2] != "page" {
				return callbackData{}, false
			}
			id, ok := parseID(parts[1])
			page, err := strconv.Atoi(parts[3])
			if !ok || err != nil || page < 1 {
				return callbackData{}, false
			}

			return callbackData{action: actionSubCategoryPage, id: id, page: page}, true
		default:
			return callbackData{}, false
		}

	case actionProductsPage:
		// products:<subCategoryID>:page:<n>
		if len(parts) != 4 || parts[2] != "page" {
			return callbackData{}, false
		}
		id, ok := parseID(parts[1])
		page, err := strconv.Atoi(parts[3])
		if !ok || err != nil || page < 1 {
			return callbackData{}, false
		}

		return callbackData{action: actionProductsPage, id: id, page: page}, true

	default:
		return callbackData{}, false
	}
}

func parseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}

	return uint(id), true
}
