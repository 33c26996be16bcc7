package seller

import (
	"context"

	"github.com/georgemunganga/aeroparts-backend/internal/fixtures"
)

// Repository defines the read-only source of seller records.
type Repository interface {
	ListSellers(ctx context.Context) ([]Seller, error)
}

type fixtureRepo struct{ sellers []Seller }

// NewFixtureRepository serves the sellers bundled with the binary.
func NewFixtureRepository() (Repository, error) {
	var sellers []Seller
	if err := fixtures.Bundled(fixtures.SellersFile, &sellers); err != nil {
		return nil, err
	}
	return &fixtureRepo{sellers: sellers}, nil
}

// NewStaticRepository serves the given sellers as-is.
func NewStaticRepository(sellers []Seller) Repository { return &fixtureRepo{sellers: sellers} }

func (r *fixtureRepo) ListSellers(ctx context.Context) ([]Seller, error) {
	out := make([]Seller, len(r.sellers))
	copy(out, r.sellers)
	return out, nil
}
