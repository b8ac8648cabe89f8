package testimonial_test

import (
	"context"
	"errors"
	"testing"

	"daily-news/internal/domain/entity"
	tmUC "daily-news/internal/usecase/testimonial"
)

type stubRepo struct {
	data []*entity.Testimonial
	err  error
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Testimonial, error) {
	return s.data, s.err
}

func (s *stubRepo) Create(_ context.Context, tm *entity.Testimonial) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	tm.ID = entity.NewID()
	s.data = append(s.data, tm)
	return tm.ID, nil
}

func TestService_CreateAndList(t *testing.T) {
	repo := &stubRepo{}
	svc := tmUC.Service{Repo: repo}

	if _, err := svc.Create(context.Background(), tmUC.CreateInput{Name: "Reader", Text: "Great coverage"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 || list[0].Text != "Great coverage" {
		t.Errorf("List() = %+v", list)
	}
}

func TestService_Create_RequiresText(t *testing.T) {
	repo := &stubRepo{}
	svc := tmUC.Service{Repo: repo}

	_, err := svc.Create(context.Background(), tmUC.CreateInput{Name: "Reader"})
	var vErr *entity.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "text" {
		t.Errorf("Create() error = %v, want validation error on text", err)
	}
}
