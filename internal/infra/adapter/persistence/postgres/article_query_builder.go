// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"daily-news/internal/repository"
)

// ArticleQueryBuilder builds WHERE clauses from an ArticleFilter.
// The same clause is shared between the COUNT and SELECT queries of a page.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause returns the WHERE clause for f and its positional arguments,
// numbered from $1. An empty filter yields an empty clause.
// Title matching uses ILIKE with LIKE metacharacters escaped; tags use array overlap.
func (qb *ArticleQueryBuilder) BuildWhereClause(f repository.ArticleFilter) (clause string, args []interface{}) {
	var conditions []string
	add := func(format string, arg interface{}) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(format, len(args)))
	}

	if f.Status != nil {
		add("status = $%d", string(*f.Status))
	}
	if f.AuthorEmail != nil {
		add("author_email = $%d", *f.AuthorEmail)
	}
	if f.TitleContains != nil {
		add("title ILIKE $%d", "%"+escapeILIKE(*f.TitleContains)+"%")
	}
	if f.Publisher != nil {
		add("publisher = $%d", *f.Publisher)
	}
	if len(f.AnyTags) > 0 {
		add("tags && $%d", pq.Array(f.AnyTags))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeILIKE escapes the characters ILIKE treats as wildcards.
func escapeILIKE(s string) string {
	return likeEscaper.Replace(s)
}
