package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"daily-news/internal/domain/entity"
	"daily-news/internal/repository"
)

type ArticleRepo struct {
	db           *sql.DB
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

// natural store order: insertion order, ties broken by id
const naturalOrder = `ORDER BY created_at, id`

func (repo *ArticleRepo) Find(ctx context.Context, filter repository.ArticleFilter) ([]*entity.Article, error) {
	where, args := repo.queryBuilder.BuildWhereClause(filter)
	query := `SELECT ` + articleColumns + ` FROM articles ` + where + ` ` + naturalOrder
	return repo.query(ctx, "Find", query, args...)
}

func (repo *ArticleRepo) FindPage(ctx context.Context, filter repository.ArticleFilter, offset, limit int) ([]*entity.Article, error) {
	where, args := repo.queryBuilder.BuildWhereClause(filter)
	args = append(args, limit, offset)
	query := `SELECT ` + articleColumns + ` FROM articles ` + where + ` ` + naturalOrder +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	return repo.query(ctx, "FindPage", query, args...)
}

func (repo *ArticleRepo) Count(ctx context.Context, filter repository.ArticleFilter) (int64, error) {
	where, args := repo.queryBuilder.BuildWhereClause(filter)
	var n int64
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles `+where, args...).Scan(&n); err != nil {
		return 0, wrap("Count", err)
	}
	return n, nil
}

func (repo *ArticleRepo) FindMostVisited(ctx context.Context, limit int) ([]*entity.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles ORDER BY times_visited DESC, id LIMIT $1`
	return repo.query(ctx, "FindMostVisited", query, limit)
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	row := repo.db.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1 LIMIT 1`, id)
	a, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("Get", err)
	}
	return a, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, a *entity.Article) (string, error) {
	const query = `
INSERT INTO articles (id, title, image, publisher, description, tags, author_email, author_name,
                      author_photo, posted_date, status, decline_reason, is_premium, times_visited)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	var posted sql.NullTime
	if a.PostedDate != nil {
		posted = sql.NullTime{Time: *a.PostedDate, Valid: true}
	}

	id := entity.NewID()
	if _, err := repo.db.ExecContext(ctx, query, id, a.Title, a.Image, a.Publisher, a.Description,
		pq.Array(tags), a.AuthorEmail, a.AuthorName, a.AuthorPhoto, posted,
		string(a.Status), a.DeclineReason, a.IsPremium, a.TimesVisited); err != nil {
		return "", translateWriteError("Create", err)
	}
	return id, nil
}

func (repo *ArticleRepo) IncrementVisits(ctx context.Context, id string) (repository.UpdateResult, error) {
	const query = `UPDATE articles SET times_visited = times_visited + 1 WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return repository.UpdateResult{}, wrap("IncrementVisits", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return repository.UpdateResult{}, wrap("IncrementVisits", err)
	}
	return repository.UpdateResult{Matched: n, Modified: n}, nil
}

// ReplaceContent upserts by id. Rows created this way start pending with zero visits
// (column defaults); an update that changes nothing returns no row.
func (repo *ArticleRepo) ReplaceContent(ctx context.Context, id string, c entity.ArticleContent) (repository.UpdateResult, error) {
	const query = `
INSERT INTO articles (id, title, image, publisher, tags, description)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
    title       = EXCLUDED.title,
    image       = EXCLUDED.image,
    publisher   = EXCLUDED.publisher,
    tags        = EXCLUDED.tags,
    description = EXCLUDED.description
WHERE (articles.title, articles.image, articles.publisher, articles.tags, articles.description)
    IS DISTINCT FROM (EXCLUDED.title, EXCLUDED.image, EXCLUDED.publisher, EXCLUDED.tags, EXCLUDED.description)
RETURNING (xmax = 0) AS inserted`

	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	var inserted bool
	err := repo.db.QueryRowContext(ctx, query, id, c.Title, c.Image, c.Publisher, pq.Array(tags), c.Description).
		Scan(&inserted)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return repository.UpdateResult{Matched: 1}, nil
	case err != nil:
		return repository.UpdateResult{}, wrap("ReplaceContent", err)
	case inserted:
		return repository.UpdateResult{UpsertedID: id}, nil
	default:
		return repository.UpdateResult{Matched: 1, Modified: 1}, nil
	}
}

func (repo *ArticleRepo) UpdateFields(ctx context.Context, id string, u repository.ArticleUpdate) (repository.UpdateResult, error) {
	var sets []assignment
	if u.Status != nil {
		sets = append(sets, assignment{"status", string(*u.Status)})
	}
	if u.DeclineReason != nil {
		sets = append(sets, assignment{"decline_reason", *u.DeclineReason})
	}
	if u.IsPremium != nil {
		sets = append(sets, assignment{"is_premium", *u.IsPremium})
	}
	res, err := updateCounting(ctx, repo.db, "articles", "id", id, sets)
	if err != nil {
		return repository.UpdateResult{}, wrap("UpdateFields", err)
	}
	return res, nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return repository.DeleteResult{}, wrap("Delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return repository.DeleteResult{}, wrap("Delete", err)
	}
	return repository.DeleteResult{Deleted: n}, nil
}

func (repo *ArticleRepo) query(ctx context.Context, op, query string, args ...interface{}) ([]*entity.Article, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 32)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, wrap(op+": Scan", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return articles, nil
}
