package postgres

import (
	"context"
	"database/sql"
	"errors"

	"daily-news/internal/domain/entity"
	"daily-news/internal/repository"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return repo.query(ctx, "List", `SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
}

func (repo *UserRepo) ListPage(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	return repo.query(ctx, "ListPage",
		`SELECT `+userColumns+` FROM users ORDER BY created_at, id LIMIT $1 OFFSET $2`, limit, offset)
}

func (repo *UserRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, wrap("Count", err)
	}
	return n, nil
}

func (repo *UserRepo) Get(ctx context.Context, id string) (*entity.User, error) {
	return repo.getBy(ctx, "Get", "id", id)
}

func (repo *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.getBy(ctx, "GetByEmail", "email", email)
}

func (repo *UserRepo) getBy(ctx context.Context, op, column, value string) (*entity.User, error) {
	row := repo.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE `+column+` = $1 LIMIT 1`, value)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap(op, err)
	}
	return u, nil
}

func (repo *UserRepo) Create(ctx context.Context, u *entity.User) (string, error) {
	const query = `
INSERT INTO users (id, email, name, photo_url, role, membership_status, membership_taken)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var taken sql.NullTime
	if u.MembershipTaken != nil {
		taken = sql.NullTime{Time: *u.MembershipTaken, Valid: true}
	}
	id := entity.NewID()
	if _, err := repo.db.ExecContext(ctx, query, id, u.Email, u.Name, u.PhotoURL,
		nullString(string(u.Role)), nullString(string(u.MembershipStatus)), taken); err != nil {
		return "", translateWriteError("Create", err)
	}
	return id, nil
}

func (repo *UserRepo) UpdateProfile(ctx context.Context, email string, p entity.Profile) (repository.UpdateResult, error) {
	res, err := updateCounting(ctx, repo.db, "users", "email", email, []assignment{
		{"name", p.Name},
		{"photo_url", p.PhotoURL},
	})
	if err != nil {
		return repository.UpdateResult{}, wrap("UpdateProfile", err)
	}
	return res, nil
}

func (repo *UserRepo) UpdateSubscription(ctx context.Context, email string, s entity.Subscription) (repository.UpdateResult, error) {
	var taken sql.NullTime
	if s.Taken != nil {
		taken = sql.NullTime{Time: *s.Taken, Valid: true}
	}
	res, err := updateCounting(ctx, repo.db, "users", "email", email, []assignment{
		{"membership_status", nullString(string(s.Status))},
		{"membership_taken", taken},
	})
	if err != nil {
		return repository.UpdateResult{}, wrap("UpdateSubscription", err)
	}
	return res, nil
}

func (repo *UserRepo) SetRole(ctx context.Context, id string, role entity.Role) (repository.UpdateResult, error) {
	res, err := updateCounting(ctx, repo.db, "users", "id", id, []assignment{
		{"role", nullString(string(role))},
	})
	if err != nil {
		return repository.UpdateResult{}, wrap("SetRole", err)
	}
	return res, nil
}

func (repo *UserRepo) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return repository.DeleteResult{}, wrap("Delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return repository.DeleteResult{}, wrap("Delete", err)
	}
	return repository.DeleteResult{Deleted: n}, nil
}

func (repo *UserRepo) query(ctx context.Context, op, query string, args ...interface{}) ([]*entity.User, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]*entity.User, 0, 16)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, wrap(op+": Scan", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return users, nil
}
