// Package testimonial provides use cases for reader testimonials.
package testimonial

import (
	"context"
	"fmt"

	"daily-news/internal/domain/entity"
	"daily-news/internal/repository"
	"daily-news/internal/resilience/circuitbreaker"
)

// CreateInput represents a submitted testimonial.
type CreateInput struct {
	Name string
	Text string
}

// Service provides testimonial use cases.
type Service struct {
	Repo  repository.TestimonialRepository
	Guard circuitbreaker.Guard
}

// List retrieves all testimonials.
func (s *Service) List(ctx context.Context) ([]*entity.Testimonial, error) {
	items, err := circuitbreaker.Call(ctx, s.Guard, "testimonial.list", s.Repo.List)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return items, nil
}

// Create stores a testimonial and returns its id.
func (s *Service) Create(ctx context.Context, in CreateInput) (string, error) {
	t := &entity.Testimonial{Name: in.Name, Text: in.Text}
	if err := t.Validate(); err != nil {
		return "", err
	}

	id, err := circuitbreaker.Call(ctx, s.Guard, "testimonial.create", func(ctx context.Context) (string, error) {
		return s.Repo.Create(ctx, t)
	})
	if err != nil {
		return "", fmt.Errorf("create testimonial: %w", err)
	}
	return id, nil
}
