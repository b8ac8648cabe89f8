package postgres

import (
	"context"
	"database/sql"

	"daily-news/internal/domain/entity"
	"daily-news/internal/repository"
)

type PublisherRepo struct {
	db *sql.DB
}

func NewPublisherRepo(db *sql.DB) repository.PublisherRepository {
	return &PublisherRepo{db: db}
}

func (repo *PublisherRepo) List(ctx context.Context) ([]*entity.Publisher, error) {
	rows, err := repo.db.QueryContext(ctx, `SELECT id, name, logo FROM publishers ORDER BY created_at, id`)
	if err != nil {
		return nil, wrap("List", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]*entity.Publisher, 0, 16)
	for rows.Next() {
		var p entity.Publisher
		if err := rows.Scan(&p.ID, &p.Name, &p.Logo); err != nil {
			return nil, wrap("List: Scan", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (repo *PublisherRepo) Create(ctx context.Context, p *entity.Publisher) (string, error) {
	id := entity.NewID()
	if _, err := repo.db.ExecContext(ctx,
		`INSERT INTO publishers (id, name, logo) VALUES ($1, $2, $3)`, id, p.Name, p.Logo); err != nil {
		return "", translateWriteError("Create", err)
	}
	return id, nil
}

type TestimonialRepo struct {
	db *sql.DB
}

func NewTestimonialRepo(db *sql.DB) repository.TestimonialRepository {
	return &TestimonialRepo{db: db}
}

func (repo *TestimonialRepo) List(ctx context.Context) ([]*entity.Testimonial, error) {
	rows, err := repo.db.QueryContext(ctx, `SELECT id, name, text FROM testimonials ORDER BY created_at, id`)
	if err != nil {
		return nil, wrap("List", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]*entity.Testimonial, 0, 16)
	for rows.Next() {
		var t entity.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Text); err != nil {
			return nil, wrap("List: Scan", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

func (repo *TestimonialRepo) Create(ctx context.Context, t *entity.Testimonial) (string, error) {
	id := entity.NewID()
	if _, err := repo.db.ExecContext(ctx,
		`INSERT INTO testimonials (id, name, text) VALUES ($1, $2, $3)`, id, t.Name, t.Text); err != nil {
		return "", translateWriteError("Create", err)
	}
	return id, nil
}
