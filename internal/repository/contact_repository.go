package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/omnimindia-api/internal/domain"
)

// ContactRepository encapsulates contact-entry persistence. Narrow on purpose:
// the service layer only needs to insert one row and learn its assigned id.
type ContactRepository interface {
	Create(ctx context.Context, entry *domain.ContactEntry) error
}

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository instantiates repository.
func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

// Create inserts a new contact_entries row and populates entry.ID and
// entry.CreatedAt from the RETURNING clause. id and created_at are always
// database-assigned, never caller-supplied.
func (r *contactRepository) Create(ctx context.Context, entry *domain.ContactEntry) error {
	const query = `
        INSERT INTO contact_entries (name, email, message)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		entry.Name,
		entry.Email,
		entry.Message,
	).Scan(&entry.ID, &entry.CreatedAt)
}
