package storage

// PageSize is the fixed number of records per page on every listing.
const PageSize = 10

// NormalizePage maps an optional page selector onto a concrete
// 1-indexed page. A nil or non-positive page means the first page.
func NormalizePage(page *int) int {
	if page == nil || *page < 1 {
		return 1
	}
	return *page
}

// PageBounds returns the half-open slice range [offset, offset+limit)
// for a normalized page.
func PageBounds(page int) (offset, limit int) {
	return (page - 1) * PageSize, PageSize
}
