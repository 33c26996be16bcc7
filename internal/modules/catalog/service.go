package catalog

import (
	"context"
	"time"

	"github.com/georgemunganga/aeroparts-backend/internal/latency"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrPartNotFound is returned for lookups of an id that is not in the catalog.
var ErrPartNotFound = errors.New("part not found")

const (
	DefaultFeaturedLimit = 8
	DefaultRelatedLimit  = 4
)

// Service exposes catalog lookups behind a call that may suspend, so a remote
// reference-data source can replace the bundled one without changing callers.
type Service interface {
	ListParts(ctx context.Context) ([]Part, error)
	SearchParts(ctx context.Context, f ProductFilters) ([]Part, error)
	GetPart(ctx context.Context, id string) (Part, error)
	PartsByCategory(ctx context.Context, category string) ([]Part, error)
	PartsBySeller(ctx context.Context, sellerID string) ([]Part, error)
	FeaturedParts(ctx context.Context, limit int) ([]Part, error)
	RelatedParts(ctx context.Context, id string, limit int) ([]Part, error)
	Facets(ctx context.Context) (Facets, error)

	// Seller listing operations validate and echo the result; the catalog
	// itself is reference data and is left untouched.
	CreateListing(ctx context.Context, sellerID string, req ListingRequest) (Part, error)
	UpdateListing(ctx context.Context, sellerID, id string, req ListingRequest) (Part, error)
	DeleteListing(ctx context.Context, sellerID, id string) error
}

type service struct {
	repo    Repository
	log     logrus.FieldLogger
	latency time.Duration
	tracer  trace.Tracer
	now     func() time.Time
}

// NewService wraps repo. Every call waits delay before reading, or returns
// early with ctx.Err() if the context ends first.
func NewService(repo Repository, log logrus.FieldLogger, delay time.Duration) Service {
	return &service{
		repo:    repo,
		log:     log.WithField("module", "catalog"),
		latency: delay,
		tracer:  otel.Tracer("aeroparts/catalog"),
		now:     time.Now,
	}
}

func (s *service) wait(ctx context.Context) error {
	return latency.Wait(ctx, s.latency)
}

func (s *service) load(ctx context.Context, op string) (trace.Span, []Part, error) {
	ctx, span := s.tracer.Start(ctx, "catalog."+op)
	if err := s.wait(ctx); err != nil {
		span.RecordError(err)
		return span, nil, err
	}
	parts, err := s.repo.ListParts(ctx)
	if err != nil {
		span.RecordError(err)
		return span, nil, errors.Wrap(err, "load parts")
	}
	return span, parts, nil
}

func (s *service) ListParts(ctx context.Context) ([]Part, error) {
	span, parts, err := s.load(ctx, "ListParts")
	defer span.End()
	return parts, err
}

func (s *service) SearchParts(ctx context.Context, f ProductFilters) ([]Part, error) {
	span, parts, err := s.load(ctx, "SearchParts")
	defer span.End()
	if err != nil {
		return nil, err
	}
	found := SearchParts(parts, f)
	span.SetAttributes(attribute.Int("catalog.results", len(found)))
	return found, nil
}

func (s *service) GetPart(ctx context.Context, id string) (Part, error) {
	span, parts, err := s.load(ctx, "GetPart")
	defer span.End()
	if err != nil {
		return Part{}, err
	}
	p, ok := FindPart(parts, id)
	if !ok {
		return Part{}, errors.Wrapf(ErrPartNotFound, "id %s", id)
	}
	return p, nil
}

func (s *service) PartsByCategory(ctx context.Context, category string) ([]Part, error) {
	span, parts, err := s.load(ctx, "PartsByCategory")
	defer span.End()
	if err != nil {
		return nil, err
	}
	return PartsByCategory(parts, category), nil
}

func (s *service) PartsBySeller(ctx context.Context, sellerID string) ([]Part, error) {
	span, parts, err := s.load(ctx, "PartsBySeller")
	defer span.End()
	if err != nil {
		return nil, err
	}
	return PartsBySeller(parts, sellerID), nil
}

func (s *service) FeaturedParts(ctx context.Context, limit int) ([]Part, error) {
	span, parts, err := s.load(ctx, "FeaturedParts")
	defer span.End()
	if err != nil {
		return nil, err
	}
	return FeaturedParts(parts, limit), nil
}

func (s *service) RelatedParts(ctx context.Context, id string, limit int) ([]Part, error) {
	span, parts, err := s.load(ctx, "RelatedParts")
	defer span.End()
	if err != nil {
		return nil, err
	}
	return RelatedParts(parts, id, limit), nil
}

func (s *service) Facets(ctx context.Context) (Facets, error) {
	span, parts, err := s.load(ctx, "Facets")
	defer span.End()
	if err != nil {
		return Facets{}, err
	}
	return CollectFacets(parts), nil
}

func (s *service) CreateListing(ctx context.Context, sellerID string, req ListingRequest) (Part, error) {
	if err := ValidateListing(req); err != nil {
		return Part{}, err
	}
	if err := s.wait(ctx); err != nil {
		return Part{}, err
	}
	p := applyListing(Part{
		ID:        uuid.NewString(),
		Currency:  "USD",
		Images:    []string{},
		SellerID:  sellerID,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}, req)

	s.log.WithFields(logrus.Fields{"seller_id": sellerID, "part_id": p.ID, "part_number": p.PartNumber}).
		Info("listing created")
	return p, nil
}

func (s *service) UpdateListing(ctx context.Context, sellerID, id string, req ListingRequest) (Part, error) {
	if err := ValidateListing(req); err != nil {
		return Part{}, err
	}
	existing, err := s.ownedPart(ctx, sellerID, id)
	if err != nil {
		return Part{}, err
	}
	p := applyListing(existing, req)

	s.log.WithFields(logrus.Fields{"seller_id": sellerID, "part_id": id}).Info("listing updated")
	return p, nil
}

func (s *service) DeleteListing(ctx context.Context, sellerID, id string) error {
	if _, err := s.ownedPart(ctx, sellerID, id); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"seller_id": sellerID, "part_id": id}).Info("listing deleted")
	return nil
}

// ownedPart hides parts of other sellers behind ErrPartNotFound.
func (s *service) ownedPart(ctx context.Context, sellerID, id string) (Part, error) {
	p, err := s.GetPart(ctx, id)
	if err != nil {
		return Part{}, err
	}
	if p.SellerID != sellerID {
		return Part{}, errors.Wrapf(ErrPartNotFound, "id %s for seller %s", id, sellerID)
	}
	return p, nil
}
