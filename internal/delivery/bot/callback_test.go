package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCallback(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		want   callbackData
		wantOK bool
	}{
		{name: "view cart", data: "view_cart", want: callbackData{action: actionViewCart}, wantOK: true},
		{name: "checkout", data: "checkout", want: callbackData{action: actionCheckout}, wantOK: true},
		{name: "pay", data: "pay", want: callbackData{action: actionPay}, wantOK: true},
		{name: "cancel", data: "cancel_order", want: callbackData{action: actionCancelOrder}, wantOK: true},
		{name: "back", data: "back_to_categories", want: callbackData{action: actionBackToCategories}, wantOK: true},
		{name: "noop indicator", data: "noop", want: callbackData{action: actionNoop}, wantOK: true},
		{
			name:   "categories page",
			data:   "categories:page:3",
			want:   callbackData{action: actionCategoriesPage, page: 3},
			wantOK: true,
		},
		{
			name:   "open category",
			data:   "category:42",
			want:   callbackData{action: actionOpenCategory, id: 42},
			wantOK: true,
		},
		{
			name:   "open subcategory",
			data:   "subcategory:7",
			want:   callbackData{action: actionOpenSubCategory, id: 7},
			wantOK: true,
		},
		{
			name:   "subcategory menu page",
			data:   "subcategory:7:page:2",
			want:   callbackData{action: actionSubCategoryPage, id: 7, page: 2},
			wantOK: true,
		},
		{
			name:   "products page",
			data:   "products:7:page:2",
			want:   callbackData{action: actionProductsPage, id: 7, page: 2},
			wantOK: true,
		},
		{
			name:   "open product",
			data:   "product:9",
			want:   callbackData{action: actionOpenProduct, id: 9},
			wantOK: true,
		},
		{
			name:   "add to cart",
			data:   "add_to_cart:9",
			want:   callbackData{action: actionAddToCart, id: 9},
			wantOK: true,
		},
		{
			name:   "remove from cart",
			data:   "remove_from_cart:15",
			want:   callbackData{action: actionRemoveFromCart, id: 15},
			wantOK: true,
		},
		{name: "unknown action", data: "self_destruct", wantOK: false},
		{name: "non-numeric id", data: "category:abc", wantOK: false},
		{name: "negative page", data: "categories:page:-1", wantOK: false},
		{name: "zero page", data: "products:7:page:0", wantOK: false},
		{name: "missing page keyword", data: "subcategory:7:p:2", wantOK: false},
		{name: "trailing garbage", data: "view_cart:1", wantOK: false},
		{name: "empty", data: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseCallback(tt.data)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCallbackTokens_RoundTrip(t *testing.T) {
	tokens := map[string]string{
		categoriesPageToken(2):       "categories:page:2",
		categoryToken(42):            "category:42",
		subCategoryToken(7):          "subcategory:7",
		subCategoriesPageToken(7, 3): "subcategory:7:page:3",
		productsPageToken(7, 2):      "products:7:page:2",
		productToken(9):              "product:9",
		addToCartToken(9):            "add_to_cart:9",
		removeFromCartToken(15):      "remove_from_cart:15",
	}

	for got, want := range tokens {
		assert.Equal(t, want, got)
		_, ok := parseCallback(got)
		assert.True(t, ok, "token %q must parse", got)
	}
}
