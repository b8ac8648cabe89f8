package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-news/internal/domain/entity"
	"daily-news/internal/repository"
)

func TestArticleRepo_PagingAndTrending(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Articles()

	for i, visits := range []int64{5, 1, 9, 3} {
		_, err := repo.Create(ctx, &entity.Article{
			Title:        string(rune('a' + i)),
			Status:       entity.StatusApproved,
			TimesVisited: visits,
		})
		require.NoError(t, err)
	}

	page, err := repo.FindPage(ctx, repository.NewArticleFilter(), 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "b", page[0].Title)
	assert.Equal(t, "c", page[1].Title)

	empty, err := repo.FindPage(ctx, repository.NewArticleFilter(), 10, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)

	top, err := repo.FindMostVisited(ctx, 3)
	require.NoError(t, err)
	var got []int64
	for _, a := range top {
		got = append(got, a.TimesVisited)
	}
	assert.Equal(t, []int64{9, 5, 3}, got)
}

func TestArticleRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Articles()
	id, err := repo.Create(ctx, &entity.Article{Title: "t", Tags: []string{"x"}})
	require.NoError(t, err)

	a, err := repo.Get(ctx, id)
	require.NoError(t, err)
	a.Tags[0] = "mutated"
	a.Title = "mutated"

	again, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "t", again.Title)
	assert.Equal(t, []string{"x"}, again.Tags)
}

func TestArticleRepo_ReplaceUpsertsThenModifies(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Articles()
	id := entity.NewID()

	res, err := repo.ReplaceContent(ctx, id, entity.ArticleContent{Title: "first"})
	require.NoError(t, err)
	assert.Equal(t, repository.UpdateResult{UpsertedID: id}, res)

	res, err = repo.ReplaceContent(ctx, id, entity.ArticleContent{Title: "first"})
	require.NoError(t, err)
	assert.Equal(t, repository.UpdateResult{Matched: 1}, res)

	res, err = repo.ReplaceContent(ctx, id, entity.ArticleContent{Title: "second"})
	require.NoError(t, err)
	assert.Equal(t, repository.UpdateResult{Matched: 1, Modified: 1}, res)

	a, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, a.Status)
	assert.Equal(t, []string{}, a.Tags)
}

func TestArticleRepo_InvalidID(t *testing.T) {
	_, err := NewStore().Articles().Get(context.Background(), "short")
	assert.True(t, errors.Is(err, entity.ErrInvalidID))
}

func TestUserRepo_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Users()

	_, err := repo.Create(ctx, &entity.User{Email: "a@x.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &entity.User{Email: "a@x.com"})
	assert.True(t, errors.Is(err, repository.ErrDuplicateKey))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestUserRepo_UpdateCounts(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Users()
	id, err := repo.Create(ctx, &entity.User{Email: "a@x.com", Name: "A"})
	require.NoError(t, err)

	res, err := repo.UpdateProfile(ctx, "a@x.com", entity.Profile{Name: "A"})
	require.NoError(t, err)
	assert.Equal(t, repository.UpdateResult{Matched: 1}, res)

	res, err = repo.UpdateProfile(ctx, "nobody@x.com", entity.Profile{Name: "B"})
	require.NoError(t, err)
	assert.Equal(t, repository.UpdateResult{}, res)

	taken := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	res, err = repo.UpdateSubscription(ctx, "a@x.com", entity.Subscription{Status: entity.MembershipPremium, Taken: &taken})
	require.NoError(t, err)
	assert.Equal(t, repository.UpdateResult{Matched: 1, Modified: 1}, res)

	res, err = repo.SetRole(ctx, id, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Modified)

	u, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())
	assert.True(t, u.IsPremiumMember())
}

func TestUserRepo_DeleteIsTolerant(t *testing.T) {
	res, err := NewStore().Users().Delete(context.Background(), entity.NewID())
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Deleted)
}
