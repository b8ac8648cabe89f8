package pagination

// CalculateOffset returns the number of items to skip for a 1-based page.
//
//   - Page 1, Limit 20 -> Offset 0
//   - Page 3, Limit 10 -> Offset 20
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages returns ceil(total / limit), and 1 for an empty collection.
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 || limit <= 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Page is one page of items together with the size of the whole collection.
type Page[T any] struct {
	Items  []T
	Total  int64
	Params Params
}

// TotalPages reports how many pages of Params.Limit items the collection spans.
func (p Page[T]) TotalPages() int {
	return CalculateTotalPages(p.Total, p.Params.Limit)
}
