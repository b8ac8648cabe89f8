package repository

import (
	"context"

	"daily-news/internal/domain/entity"
)

// PublisherRepository is the append-only store port for publishers.
type PublisherRepository interface {
	List(ctx context.Context) ([]*entity.Publisher, error)
	Create(ctx context.Context, publisher *entity.Publisher) (string, error)
}

// TestimonialRepository is the append-only store port for testimonials.
type TestimonialRepository interface {
	List(ctx context.Context) ([]*entity.Testimonial, error)
	Create(ctx context.Context, testimonial *entity.Testimonial) (string, error)
}
