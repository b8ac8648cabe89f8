package pagination

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// ErrInvalidParams is wrapped by every parameter validation failure.
var ErrInvalidParams = errors.New("invalid pagination parameters")

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page  int // 1-based page number
	Limit int // Items per page
}

// Offset returns the number of items preceding this page.
func (p Params) Offset() int {
	return CalculateOffset(p.Page, p.Limit)
}

// ParseQueryParams parses the page and limit query parameters.
//
// Missing parameters take the configured defaults. Supplied values must be
// integers with page >= 1 and 1 <= limit <= MaxLimit; anything else is rejected
// rather than clamped so a client never receives a page it did not ask for.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Page:  config.DefaultPage,
		Limit: config.DefaultLimit,
	}

	q := r.URL.Query()
	if pageStr := q.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, fmt.Errorf("%w: page must be a positive integer", ErrInvalidParams)
		}
		params.Page = page
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > config.MaxLimit {
			return params, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidParams, config.MaxLimit)
		}
		params.Limit = limit
	}

	return params, nil
}
