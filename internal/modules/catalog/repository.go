package catalog

import (
	"context"

	"github.com/georgemunganga/aeroparts-backend/internal/fixtures"
)

// Repository is the read-only source of part reference data.
type Repository interface {
	ListParts(ctx context.Context) ([]Part, error)
}

type fixtureRepo struct{ parts []Part }

// NewFixtureRepository serves the parts bundled with the binary.
func NewFixtureRepository() (Repository, error) {
	var parts []Part
	if err := fixtures.Bundled(fixtures.PartsFile, &parts); err != nil {
		return nil, err
	}
	return &fixtureRepo{parts: parts}, nil
}

// NewFileRepository serves parts decoded from a JSON or YAML file.
func NewFileRepository(path string) (Repository, error) {
	var parts []Part
	if err := fixtures.LoadFile(path, &parts); err != nil {
		return nil, err
	}
	return &fixtureRepo{parts: parts}, nil
}

// NewStaticRepository serves the given parts as-is.
func NewStaticRepository(parts []Part) Repository { return &fixtureRepo{parts: parts} }

// ListParts returns a copy so callers cannot disturb the shared collection.
func (r *fixtureRepo) ListParts(ctx context.Context) ([]Part, error) {
	out := make([]Part, len(r.parts))
	copy(out, r.parts)
	return out, nil
}
