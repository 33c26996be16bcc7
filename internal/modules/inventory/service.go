package inventory

import (
	"context"

	"github.com/georgemunganga/aeroparts-backend/internal/modules/catalog"
	"github.com/pkg/errors"
)

// Service reports stock positions computed from the live catalog.
type Service interface {
	// CatalogSummary covers every part in the catalog.
	CatalogSummary(ctx context.Context) (Summary, error)
	// SellerSummary covers the parts of one seller. It does not check that
	// the seller exists.
	SellerSummary(ctx context.Context, sellerID string) (Summary, error)
}

type service struct {
	catalog   catalog.Service
	threshold int
}

// NewService creates an inventory service. A threshold <= 0 selects
// DefaultLowStockThreshold.
func NewService(catalog catalog.Service, threshold int) Service {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return &service{catalog: catalog, threshold: threshold}
}

func (s *service) CatalogSummary(ctx context.Context) (Summary, error) {
	parts, err := s.catalog.ListParts(ctx)
	if err != nil {
		return Summary{}, errors.Wrap(err, "catalog summary")
	}
	return Summarize(parts, s.threshold), nil
}

func (s *service) SellerSummary(ctx context.Context, sellerID string) (Summary, error) {
	parts, err := s.catalog.PartsBySeller(ctx, sellerID)
	if err != nil {
		return Summary{}, errors.Wrapf(err, "summary for seller %s", sellerID)
	}
	return Summarize(parts, s.threshold), nil
}
