package bot

// Page sizes of the catalog menus. Product cards are heavier than menu
// buttons, so the products page is smaller.
const (
	categoriesPageSize    = 5
	subCategoriesPageSize = 5
	productsPageSize      = 3
)

// pageCount returns the number of pages needed for total items. An empty
// listing still has one page so navigation has somewhere to live.
func pageCount(total, pageSize int) int {
	if total <= 0 {
		return 1
	}

	return (total + pageSize - 1) / pageSize
}

// pageSlice returns the [lo, hi) bounds of a 1-based page. Pages beyond the
// end clamp to the last page, so a stale page token after a deletion still
// renders something.
func pageSlice(total, pageSize, page int) (int, int) {
	pages := pageCount(total, pageSize)
	if page > pages {
		page = pages
	}
	if page < 1 {
		page = 1
	}

	lo := (page - 1) * pageSize
	if lo > total {
		lo = total
	}
	hi := lo + pageSize
	if hi > total {
		hi = total
	}

	return lo, hi
}

// clampPage normalizes a requested page into [1, pages].
func clampPage(total, pageSize, page int) int {
	pages := pageCount(total, pageSize)
	if page > pages {
		return pages
	}
	if page < 1 {
		return 1
	}

	return page
}
