package seller

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a PostgreSQL seller repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) ListSellers(ctx context.Context) ([]Seller, error) {
	query := `
		SELECT id, company_name, contact_email, phone, address, certifications, logo, description
		FROM sellers
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "query sellers")
	}
	defer rows.Close()

	sellers := make([]Seller, 0)
	for rows.Next() {
		var s Seller
		if err := rows.Scan(
			&s.ID,
			&s.CompanyName,
			&s.ContactEmail,
			&s.Phone,
			&s.Address,
			pq.Array(&s.Certifications),
			&s.Logo,
			&s.Description,
		); err != nil {
			return nil, errors.Wrap(err, "scan seller")
		}
		sellers = append(sellers, s)
	}
	return sellers, errors.Wrap(rows.Err(), "iterate sellers")
}
