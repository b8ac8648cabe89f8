package article_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"daily-news/internal/domain/entity"
	"daily-news/internal/repository"
)

/* ───────── in-memory ArticleRepository ───────── */

type stubRepo struct {
	mu    sync.Mutex
	order []string
	data  map[string]*entity.Article
	calls int
	err   error // forced failure for every call
}

func newStub(articles ...*entity.Article) *stubRepo {
	s := &stubRepo{data: map[string]*entity.Article{}}
	for _, a := range articles {
		if a.ID == "" {
			a.ID = entity.NewID()
		}
		s.put(a)
	}
	return s
}

func (s *stubRepo) put(a *entity.Article) {
	if _, ok := s.data[a.ID]; !ok {
		s.order = append(s.order, a.ID)
	}
	s.data[a.ID] = a
}

func (s *stubRepo) begin() error {
	s.mu.Lock()
	s.calls++
	return s.err
}

func (s *stubRepo) matching(f repository.ArticleFilter) []*entity.Article {
	out := []*entity.Article{}
	for _, id := range s.order {
		if a := s.data[id]; f.Matches(a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out
}

func (s *stubRepo) Find(_ context.Context, f repository.ArticleFilter) ([]*entity.Article, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}
	return s.matching(f), nil
}

func (s *stubRepo) FindPage(_ context.Context, f repository.ArticleFilter, offset, limit int) ([]*entity.Article, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}
	all := s.matching(f)
	if offset >= len(all) {
		return []*entity.Article{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (s *stubRepo) Count(_ context.Context, f repository.ArticleFilter) (int64, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return 0, err
	}
	return int64(len(s.matching(f))), nil
}

func (s *stubRepo) FindMostVisited(_ context.Context, limit int) ([]*entity.Article, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}
	all := s.matching(repository.NewArticleFilter())
	sort.SliceStable(all, func(i, j int) bool { return all[i].TimesVisited > all[j].TimesVisited })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *stubRepo) Get(_ context.Context, id string) (*entity.Article, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}
	a, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) (string, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return "", err
	}
	cp := *a
	cp.ID = entity.NewID()
	s.put(&cp)
	return cp.ID, nil
}

func (s *stubRepo) IncrementVisits(_ context.Context, id string) (repository.UpdateResult, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return repository.UpdateResult{}, err
	}
	a, ok := s.data[id]
	if !ok {
		return repository.UpdateResult{}, nil
	}
	a.TimesVisited++
	return repository.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (s *stubRepo) ReplaceContent(_ context.Context, id string, c entity.ArticleContent) (repository.UpdateResult, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return repository.UpdateResult{}, err
	}
	a, ok := s.data[id]
	if !ok {
		s.put(&entity.Article{
			ID: id, Title: c.Title, Image: c.Image, Publisher: c.Publisher,
			Tags: c.Tags, Description: c.Description, Status: entity.StatusPending,
		})
		return repository.UpdateResult{UpsertedID: id}, nil
	}
	a.Title, a.Image, a.Publisher, a.Tags, a.Description = c.Title, c.Image, c.Publisher, c.Tags, c.Description
	return repository.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (s *stubRepo) UpdateFields(_ context.Context, id string, u repository.ArticleUpdate) (repository.UpdateResult, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return repository.UpdateResult{}, err
	}
	a, ok := s.data[id]
	if !ok {
		return repository.UpdateResult{}, nil
	}
	before := *a
	if u.Status != nil {
		a.Status = *u.Status
	}
	if u.DeclineReason != nil {
		a.DeclineReason = *u.DeclineReason
	}
	if u.IsPremium != nil {
		a.IsPremium = *u.IsPremium
	}
	res := repository.UpdateResult{Matched: 1}
	if before.Status != a.Status || before.DeclineReason != a.DeclineReason || before.IsPremium != a.IsPremium {
		res.Modified = 1
	}
	return res, nil
}

func (s *stubRepo) Delete(_ context.Context, id string) (repository.DeleteResult, error) {
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return repository.DeleteResult{}, err
	}
	if _, ok := s.data[id]; !ok {
		return repository.DeleteResult{}, nil
	}
	delete(s.data, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return repository.DeleteResult{Deleted: 1}, nil
}

func titles(articles []*entity.Article) string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.Title
	}
	return strings.Join(out, ",")
}
