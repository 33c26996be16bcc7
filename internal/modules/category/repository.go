package category

import (
	"context"
	"database/sql"

	"github.com/georgemunganga/aeroparts-backend/internal/fixtures"
	"github.com/pkg/errors"
)

type Repository interface {
	ListCategories(ctx context.Context) ([]Category, error)
}

type fixtureRepo struct{ categories []Category }

// NewFixtureRepository serves the categories bundled with the binary.
func NewFixtureRepository() (Repository, error) {
	var categories []Category
	if err := fixtures.Bundled(fixtures.CategoriesFile, &categories); err != nil {
		return nil, err
	}
	return &fixtureRepo{categories: categories}, nil
}

func NewStaticRepository(categories []Category) Repository {
	return &fixtureRepo{categories: categories}
}

func (r *fixtureRepo) ListCategories(ctx context.Context) ([]Category, error) {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

type postgresRepository struct{ db *sql.DB }

// NewPostgresRepository reads the categories table.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, slug, description, icon FROM categories ORDER BY position`)
	if err != nil {
		return nil, errors.Wrap(err, "query categories")
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Icon); err != nil {
			return nil, errors.Wrap(err, "scan category")
		}
		categories = append(categories, c)
	}
	return categories, errors.Wrap(rows.Err(), "iterate categories")
}
