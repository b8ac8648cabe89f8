package memory

import (
	"slices"
	"time"

	"daily-news/internal/domain/entity"
)

// window applies skip/limit the way the document store does: a non-positive
// limit means no limit.
func window[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func cloneArticle(a *entity.Article) *entity.Article {
	cp := *a
	cp.Tags = slices.Clone(a.Tags)
	cp.PostedDate = cloneTime(a.PostedDate)
	return &cp
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	cp := *u
	cp.MembershipTaken = cloneTime(u.MembershipTaken)
	return &cp
}

func cloneUsers(users []*entity.User) []*entity.User {
	out := make([]*entity.User, 0, len(users))
	for _, u := range users {
		out = append(out, cloneUser(u))
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func boolCount(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
