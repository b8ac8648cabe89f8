// Package publisher provides use cases for the append-only publisher catalog.
package publisher

import (
	"context"
	"fmt"
	"strings"

	"daily-news/internal/domain/entity"
	"daily-news/internal/repository"
	"daily-news/internal/resilience/circuitbreaker"
)

// CreateInput represents the input parameters for adding a publisher.
type CreateInput struct {
	Name string
	Logo string
}

// Service provides publisher use cases.
type Service struct {
	Repo  repository.PublisherRepository
	Guard circuitbreaker.Guard
}

// List retrieves all publishers.
func (s *Service) List(ctx context.Context) ([]*entity.Publisher, error) {
	pubs, err := circuitbreaker.Call(ctx, s.Guard, "publisher.list", s.Repo.List)
	if err != nil {
		return nil, fmt.Errorf("list publishers: %w", err)
	}
	return pubs, nil
}

// Create adds a publisher and returns its id.
func (s *Service) Create(ctx context.Context, in CreateInput) (string, error) {
	p := &entity.Publisher{Name: strings.TrimSpace(in.Name), Logo: in.Logo}
	if err := p.Validate(); err != nil {
		return "", err
	}

	id, err := circuitbreaker.Call(ctx, s.Guard, "publisher.create", func(ctx context.Context) (string, error) {
		return s.Repo.Create(ctx, p)
	})
	if err != nil {
		return "", fmt.Errorf("create publisher: %w", err)
	}
	return id, nil
}
