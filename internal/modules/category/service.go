package category

import (
	"context"
	"time"

	"github.com/georgemunganga/aeroparts-backend/internal/latency"
	"github.com/pkg/errors"
)

var ErrCategoryNotFound = errors.New("category not found")

type Service interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (Category, error)
}

type service struct {
	repo  Repository
	delay time.Duration
}

func NewService(repo Repository, delay time.Duration) Service {
	return &service{repo: repo, delay: delay}
}

func (s *service) ListCategories(ctx context.Context) ([]Category, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.repo.ListCategories(ctx)
}

func (s *service) GetCategoryBySlug(ctx context.Context, slug string) (Category, error) {
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return Category{}, err
	}
	for _, c := range categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return Category{}, errors.Wrapf(ErrCategoryNotFound, "slug %s", slug)
}
