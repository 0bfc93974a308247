package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/NajatBouz/study-organizer/internal/model"
)

var _ model.LinkStore = (*LinkRepository)(nil)

type LinkRepository struct {
	db *Connection
}

func NewLinkRepository(db *Connection) *LinkRepository {
	return &LinkRepository{
		db: db,
	}
}

const linkColumns = `id, owner_id, folder_id, title, url, category, note, created_at, updated_at`

func scanLink(row pgx.Row) (model.Link, error) {
	var l model.Link
	err := row.Scan(
		&l.ID, &l.OwnerID, &l.FolderID, &l.Title, &l.URL, &l.Category, &l.Note,
		&l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *LinkRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE id = $1`

	link, err := scanLink(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Link{}, model.ErrNotFound
		}
		return model.Link{}, fmt.Errorf("failed to get link by id: %w", err)
	}

	return link, nil
}

func (r *LinkRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, folderID *uuid.UUID) ([]model.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE owner_id = $1 AND ($2::uuid IS NULL OR folder_id = $2) ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, ownerID, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	defer rows.Close()

	return collectLinks(rows)
}

func (r *LinkRepository) SearchByOwner(ctx context.Context, ownerID uuid.UUID, term string) ([]model.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE owner_id = $1 AND title ILIKE '%' || $2 || '%' ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, ownerID, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search links: %w", err)
	}
	defer rows.Close()

	return collectLinks(rows)
}

func (r *LinkRepository) Create(ctx context.Context, link model.Link) (model.Link, error) {
	query := `INSERT INTO links (id, owner_id, folder_id, title, url, category, note, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING ` + linkColumns

	saved, err := scanLink(r.db.QueryRow(ctx, query,
		link.ID, link.OwnerID, link.FolderID, link.Title, link.URL,
		link.Category, link.Note, link.CreatedAt, link.UpdatedAt,
	))
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to create link: %w", err)
	}

	return saved, nil
}

func (r *LinkRepository) Update(ctx context.Context, link model.Link) (model.Link, error) {
	query := `UPDATE links SET folder_id = $2, title = $3, url = $4, category = $5, note = $6, updated_at = $7
			  WHERE id = $1
			  RETURNING ` + linkColumns

	saved, err := scanLink(r.db.QueryRow(ctx, query,
		link.ID, link.FolderID, link.Title, link.URL, link.Category, link.Note, link.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Link{}, model.ErrNotFound
		}
		return model.Link{}, fmt.Errorf("failed to update link: %w", err)
	}

	return saved, nil
}

func (r *LinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM links WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func collectLinks(rows pgx.Rows) ([]model.Link, error) {
	links := []model.Link{}
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read links: %w", err)
	}

	return links, nil
}
