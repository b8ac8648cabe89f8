package pagination_test

import (
	"errors"
	"testing"

	"daily-news/internal/common/pagination"
)

func TestParams_Validate(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()

	tests := []struct {
		name      string
		params    pagination.Params
		wantError bool
	}{
		{"valid params", pagination.Params{Page: 1, Limit: 20}, false},
		{"limit at max", pagination.Params{Page: 1, Limit: 100}, false},
		{"limit at min", pagination.Params{Page: 1, Limit: 1}, false},
		{"zero page", pagination.Params{Page: 0, Limit: 20}, true},
		{"negative page", pagination.Params{Page: -1, Limit: 20}, true},
		{"zero limit", pagination.Params{Page: 1, Limit: 0}, true},
		{"limit over max", pagination.Params{Page: 1, Limit: 101}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate(config)
			if tt.wantError != (err != nil) {
				t.Fatalf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
			if err != nil && !errors.Is(err, pagination.ErrInvalidParams) {
				t.Errorf("Validate() error = %v, want ErrInvalidParams", err)
			}
		})
	}
}
