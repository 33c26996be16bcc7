package seller

import (
	"context"
	"time"

	"github.com/georgemunganga/aeroparts-backend/internal/latency"
	"github.com/pkg/errors"
)

// ErrSellerNotFound is returned for an id with no seller record.
var ErrSellerNotFound = errors.New("seller not found")

type Service interface {
	ListSellers(ctx context.Context) ([]Seller, error)
	GetSeller(ctx context.Context, id string) (Seller, error)
}

type service struct {
	repo  Repository
	delay time.Duration
}

// NewService wraps repo; every lookup first waits delay, like catalog reads.
func NewService(repo Repository, delay time.Duration) Service {
	return &service{repo: repo, delay: delay}
}

func (s *service) ListSellers(ctx context.Context) ([]Seller, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.repo.ListSellers(ctx)
}

func (s *service) GetSeller(ctx context.Context, id string) (Seller, error) {
	sellers, err := s.ListSellers(ctx)
	if err != nil {
		return Seller{}, err
	}
	for _, sl := range sellers {
		if sl.ID == id {
			return sl, nil
		}
	}
	return Seller{}, errors.Wrapf(ErrSellerNotFound, "id %s", id)
}
