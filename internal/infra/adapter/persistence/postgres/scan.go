package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"daily-news/internal/domain/entity"
	"daily-news/internal/repository"
)

const uniqueViolation = "23505"

type rowScanner interface {
	Scan(dest ...interface{}) error
}

const articleColumns = `id, title, image, publisher, description, tags, author_email, author_name,
author_photo, posted_date, status, decline_reason, is_premium, times_visited`

func scanArticle(s rowScanner) (*entity.Article, error) {
	var (
		a      entity.Article
		posted sql.NullTime
		status string
	)
	if err := s.Scan(&a.ID, &a.Title, &a.Image, &a.Publisher, &a.Description,
		pq.Array(&a.Tags), &a.AuthorEmail, &a.AuthorName, &a.AuthorPhoto, &posted,
		&status, &a.DeclineReason, &a.IsPremium, &a.TimesVisited); err != nil {
		return nil, err
	}
	if posted.Valid {
		t := posted.Time
		a.PostedDate = &t
	}
	a.Status = entity.ArticleStatus(status)
	return &a, nil
}

const userColumns = `id, email, name, photo_url, role, membership_status, membership_taken`

func scanUser(s rowScanner) (*entity.User, error) {
	var (
		u                entity.User
		role, membership sql.NullString
		membershipTaken  sql.NullTime
	)
	if err := s.Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &role, &membership, &membershipTaken); err != nil {
		return nil, err
	}
	u.Role = entity.Role(role.String)
	u.MembershipStatus = entity.MembershipStatus(membership.String)
	if membershipTaken.Valid {
		t := membershipTaken.Time
		u.MembershipTaken = &t
	}
	return &u, nil
}

// nullString maps the empty string to SQL NULL so unset fields stay NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}

func translateWriteError(op string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: %w: %w", op, repository.ErrDuplicateKey, err)
	}
	return wrap(op, err)
}
