package publisher_test

import (
	"context"
	"errors"
	"testing"

	"daily-news/internal/domain/entity"
	pubUC "daily-news/internal/usecase/publisher"
)

type stubRepo struct {
	data []*entity.Publisher
	err  error
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Publisher, error) {
	return s.data, s.err
}

func (s *stubRepo) Create(_ context.Context, p *entity.Publisher) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	p.ID = entity.NewID()
	s.data = append(s.data, p)
	return p.ID, nil
}

func TestService_Create(t *testing.T) {
	repo := &stubRepo{}
	svc := pubUC.Service{Repo: repo}

	id, err := svc.Create(context.Background(), pubUC.CreateInput{Name: "  Daily Star ", Logo: "logo.png"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id == "" || len(repo.data) != 1 || repo.data[0].Name != "Daily Star" {
		t.Errorf("Create() stored %+v with id %q", repo.data, id)
	}

	list, err := svc.List(context.Background())
	if err != nil || len(list) != 1 {
		t.Errorf("List() = %v, %v; want one publisher", list, err)
	}
}

func TestService_Create_Validation(t *testing.T) {
	repo := &stubRepo{}
	svc := pubUC.Service{Repo: repo}

	_, err := svc.Create(context.Background(), pubUC.CreateInput{Name: " "})
	if !errors.Is(err, entity.ErrInvalidInput) {
		t.Errorf("Create() error = %v, want ErrInvalidInput", err)
	}
	if len(repo.data) != 0 {
		t.Errorf("Create() stored an invalid publisher")
	}
}

func TestService_StoreError(t *testing.T) {
	svc := pubUC.Service{Repo: &stubRepo{err: errors.New("down")}}

	if _, err := svc.List(context.Background()); err == nil {
		t.Error("List() error = nil, want store error")
	}
	if _, err := svc.Create(context.Background(), pubUC.CreateInput{Name: "x"}); err == nil {
		t.Error("Create() error = nil, want store error")
	}
}
