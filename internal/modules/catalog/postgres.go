package catalog

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository reads parts from the parts table. It never writes.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func scanPart(scan func(...interface{}) error) (Part, error) {
	var (
		p         Part
		condition string
		createdAt time.Time
	)
	err := scan(&p.ID, &p.Name, &p.PartNumber, &p.Description, &p.Manufacturer,
		&p.Category, &condition, pq.Array(&p.Compatibility), &p.Price, &p.Currency,
		pq.Array(&p.Images), &p.Stock, &p.SellerID, &p.Featured, &createdAt)
	if err != nil {
		return Part{}, err
	}
	p.Condition = Condition(condition)
	p.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	return p, nil
}

func (r *postgresRepo) ListParts(ctx context.Context) ([]Part, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,name,part_number,description,manufacturer,category,condition,
		       compatibility,price,currency,images,stock,seller_id,featured,created_at
		FROM parts ORDER BY position`)
	if err != nil {
		return nil, errors.Wrap(err, "query parts")
	}
	defer rows.Close()

	parts := make([]Part, 0)
	for rows.Next() {
		p, err := scanPart(rows.Scan)
		if err != nil {
			return nil, errors.Wrap(err, "scan part")
		}
		parts = append(parts, p)
	}
	return parts, errors.Wrap(rows.Err(), "iterate parts")
}
