package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/NajatBouz/study-organizer/internal/model"
)

var _ model.FolderStore = (*FolderRepository)(nil)

type FolderRepository struct {
	db *Connection
}

func NewFolderRepository(db *Connection) *FolderRepository {
	return &FolderRepository{
		db: db,
	}
}

const folderColumns = `id, owner_id, name, created_at, updated_at`

func scanFolder(row pgx.Row) (model.Folder, error) {
	var f model.Folder
	err := row.Scan(&f.ID, &f.OwnerID, &f.Name, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func (r *FolderRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Folder, error) {
	query := `SELECT ` + folderColumns + ` FROM folders WHERE id = $1`

	folder, err := scanFolder(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Folder{}, model.ErrNotFound
		}
		return model.Folder{}, fmt.Errorf("failed to get folder by id: %w", err)
	}

	return folder, nil
}

func (r *FolderRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Folder, error) {
	query := `SELECT ` + folderColumns + ` FROM folders WHERE owner_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	defer rows.Close()

	return collectFolders(rows)
}

func (r *FolderRepository) SearchByOwner(ctx context.Context, ownerID uuid.UUID, term string) ([]model.Folder, error) {
	query := `SELECT ` + folderColumns + ` FROM folders WHERE owner_id = $1 AND name ILIKE '%' || $2 || '%' ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, ownerID, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search folders: %w", err)
	}
	defer rows.Close()

	return collectFolders(rows)
}

func (r *FolderRepository) Create(ctx context.Context, folder model.Folder) (model.Folder, error) {
	query := `INSERT INTO folders (id, owner_id, name, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + folderColumns

	saved, err := scanFolder(r.db.QueryRow(ctx, query,
		folder.ID, folder.OwnerID, folder.Name, folder.CreatedAt, folder.UpdatedAt,
	))
	if err != nil {
		return model.Folder{}, fmt.Errorf("failed to create folder: %w", err)
	}

	return saved, nil
}

func (r *FolderRepository) Update(ctx context.Context, folder model.Folder) (model.Folder, error) {
	query := `UPDATE folders SET name = $2, updated_at = $3
			  WHERE id = $1
			  RETURNING ` + folderColumns

	saved, err := scanFolder(r.db.QueryRow(ctx, query, folder.ID, folder.Name, folder.UpdatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Folder{}, model.ErrNotFound
		}
		return model.Folder{}, fmt.Errorf("failed to update folder: %w", err)
	}

	return saved, nil
}

func (r *FolderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM folders WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func collectFolders(rows pgx.Rows) ([]model.Folder, error) {
	folders := []model.Folder{}
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan folder: %w", err)
		}
		folders = append(folders, folder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read folders: %w", err)
	}

	return folders, nil
}
