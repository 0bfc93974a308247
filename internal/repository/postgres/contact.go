package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/NajatBouz/study-organizer/internal/model"
)

var _ model.ContactStore = (*ContactRepository)(nil)

type ContactRepository struct {
	db *Connection
}

func NewContactRepository(db *Connection) *ContactRepository {
	return &ContactRepository{
		db: db,
	}
}

const contactColumns = `id, owner_id, name, role, email, phone, category, created_at, updated_at`

func scanContact(row pgx.Row) (model.Contact, error) {
	var c model.Contact
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.Role, &c.Email, &c.Phone, &c.Category,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *ContactRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

	contact, err := scanContact(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Contact{}, model.ErrNotFound
		}
		return model.Contact{}, fmt.Errorf("failed to get contact by id: %w", err)
	}

	return contact, nil
}

func (r *ContactRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE owner_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	return collectContacts(rows)
}

func (r *ContactRepository) SearchByOwner(ctx context.Context, ownerID uuid.UUID, term string) ([]model.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE owner_id = $1 AND name ILIKE '%' || $2 || '%' ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, ownerID, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}
	defer rows.Close()

	return collectContacts(rows)
}

func (r *ContactRepository) Create(ctx context.Context, contact model.Contact) (model.Contact, error) {
	query := `INSERT INTO contacts (id, owner_id, name, role, email, phone, category, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING ` + contactColumns

	saved, err := scanContact(r.db.QueryRow(ctx, query,
		contact.ID, contact.OwnerID, contact.Name, contact.Role, contact.Email,
		contact.Phone, contact.Category, contact.CreatedAt, contact.UpdatedAt,
	))
	if err != nil {
		return model.Contact{}, fmt.Errorf("failed to create contact: %w", err)
	}

	return saved, nil
}

func (r *ContactRepository) Update(ctx context.Context, contact model.Contact) (model.Contact, error) {
	query := `UPDATE contacts SET name = $2, role = $3, email = $4, phone = $5, category = $6, updated_at = $7
			  WHERE id = $1
			  RETURNING ` + contactColumns

	saved, err := scanContact(r.db.QueryRow(ctx, query,
		contact.ID, contact.Name, contact.Role, contact.Email, contact.Phone,
		contact.Category, contact.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Contact{}, model.ErrNotFound
		}
		return model.Contact{}, fmt.Errorf("failed to update contact: %w", err)
	}

	return saved, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM contacts WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func collectContacts(rows pgx.Rows) ([]model.Contact, error) {
	contacts := []model.Contact{}
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contacts: %w", err)
	}

	return contacts, nil
}
