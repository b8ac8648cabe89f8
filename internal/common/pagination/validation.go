package pagination

import "fmt"

// Validate checks params built outside ParseQueryParams against the configuration.
func (p Params) Validate(config Config) error {
	if p.Page < 1 {
		return fmt.Errorf("%w: page must be a positive integer", ErrInvalidParams)
	}
	if p.Limit < 1 || p.Limit > config.MaxLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidParams, config.MaxLimit)
	}
	return nil
}
