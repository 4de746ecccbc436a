package pagination

const (
	// MaxPerPage caps how many rows a list call may ask the backend for.
	MaxPerPage = 100
	// MaxPage bounds the page number accepted from the browser.
	MaxPage = 10000
)

// ClampPerPage keeps a requested page size within bounds. Zero means "let the
// backend pick" and is returned unchanged.
func ClampPerPage(perPage int) int {
	switch {
	case perPage <= 0:
		return 0
	case perPage > MaxPerPage:
		return MaxPerPage
	}
	return perPage
}

// ClampPage keeps a requested page number within bounds; zero stays zero.
func ClampPage(page int) int {
	switch {
	case page <= 0:
		return 0
	case page > MaxPage:
		return MaxPage
	}
	return page
}
