package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"daily-news/internal/repository"
)

type assignment struct {
	column string
	value  interface{}
}

// updateCounting applies sets to the row identified by key and reports matched
// and modified counts separately. A row whose columns already hold the new
// values counts as matched but not modified.
func updateCounting(ctx context.Context, db *sql.DB, table, keyColumn string, key interface{}, sets []assignment) (repository.UpdateResult, error) {
	if len(sets) == 0 {
		var n int64
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, table, keyColumn)
		if err := db.QueryRowContext(ctx, query, key).Scan(&n); err != nil {
			return repository.UpdateResult{}, err
		}
		return repository.UpdateResult{Matched: n}, nil
	}

	args := []interface{}{key}
	setList := make([]string, 0, len(sets))
	cols := make([]string, 0, len(sets))
	params := make([]string, 0, len(sets))
	for _, s := range sets {
		args = append(args, s.value)
		p := fmt.Sprintf("$%d", len(args))
		setList = append(setList, s.column+" = "+p)
		cols = append(cols, s.column)
		params = append(params, p)
	}

	query := fmt.Sprintf(`
WITH target AS (
    SELECT 1 FROM %[1]s WHERE %[2]s = $1
), changed AS (
    UPDATE %[1]s SET %[3]s
    WHERE %[2]s = $1 AND (%[4]s) IS DISTINCT FROM (%[5]s)
    RETURNING 1
)
SELECT (SELECT COUNT(*) FROM target) AS matched, (SELECT COUNT(*) FROM changed) AS modified`,
		table, keyColumn, strings.Join(setList, ", "), strings.Join(cols, ", "), strings.Join(params, ", "))

	var res repository.UpdateResult
	if err := db.QueryRowContext(ctx, query, args...).Scan(&res.Matched, &res.Modified); err != nil {
		return repository.UpdateResult{}, err
	}
	return res, nil
}

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
