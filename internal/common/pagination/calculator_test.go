package pagination_test

import (
	"testing"

	"daily-news/internal/common/pagination"
)

func TestCalculateOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		page  int
		limit int
		want  int
	}{
		{"first page", 1, 20, 0},
		{"second page", 2, 20, 20},
		{"page 10 with limit 50", 10, 50, 450},
		{"page 1 with limit 1", 1, 1, 0},
		{"large page number", 1000, 20, 19980},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pagination.CalculateOffset(tt.page, tt.limit); got != tt.want {
				t.Errorf("CalculateOffset(%d, %d) = %d, want %d", tt.page, tt.limit, got, tt.want)
			}
		})
	}
}

func TestCalculateTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{"zero items", 0, 20, 1},
		{"fewer than limit", 10, 20, 1},
		{"exactly limit", 20, 20, 1},
		{"one over limit", 21, 20, 2},
		{"exact multiple", 100, 20, 5},
		{"zero limit", 10, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pagination.CalculateTotalPages(tt.total, tt.limit); got != tt.want {
				t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
			}
		})
	}
}

func TestPage_TotalPages(t *testing.T) {
	t.Parallel()

	p := pagination.Page[string]{Items: []string{"a", "b"}, Total: 11, Params: pagination.Params{Page: 1, Limit: 5}}
	if got := p.TotalPages(); got != 3 {
		t.Errorf("TotalPages() = %d, want 3", got)
	}
}
