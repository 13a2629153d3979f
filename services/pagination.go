package services

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// Page is the window a listing query reads.
type Page struct {
	Limit       int
	CurrentPage int
	TotalPages  int
	Offset      int
}

// Paginate computes page bounds for total matching rows. Non-positive page
// or limit fall back to the defaults and page is clamped to the last page.
func Paginate(page, limit int, total int64) Page {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	totalPages := 1
	if total > int64(limit) {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	if page > totalPages {
		page = totalPages
	}

	return Page{
		Limit:       limit,
		CurrentPage: page,
		TotalPages:  totalPages,
		Offset:      (page - 1) * limit,
	}
}

// ParsePageParams reads raw page/limit query values. Unparsable values become 0
// and are defaulted by Paginate.
func ParsePageParams(rawPage, rawLimit string) (page, limit int) {
	page, _ = strconv.Atoi(rawPage)
	limit, _ = strconv.Atoi(rawLimit)
	return page, limit
}
