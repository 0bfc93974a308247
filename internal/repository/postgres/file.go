package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/NajatBouz/study-organizer/internal/model"
)

var _ model.FileStore = (*FileRepository)(nil)

type FileRepository struct {
	db *Connection
}

func NewFileRepository(db *Connection) *FileRepository {
	return &FileRepository{
		db: db,
	}
}

const fileColumns = `id, owner_id, folder_id, name, key, content_type, size, created_at`

func scanFile(row pgx.Row) (model.File, error) {
	var f model.File
	err := row.Scan(
		&f.ID, &f.OwnerID, &f.FolderID, &f.Name, &f.Key, &f.ContentType, &f.Size, &f.CreatedAt,
	)
	return f, err
}

func (r *FileRepository) GetByID(ctx context.Context, id uuid.UUID) (model.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1`

	file, err := scanFile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.File{}, model.ErrNotFound
		}
		return model.File{}, fmt.Errorf("failed to get file by id: %w", err)
	}

	return file, nil
}

func (r *FileRepository) ListByFolder(ctx context.Context, ownerID uuid.UUID, folderID uuid.UUID) ([]model.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE owner_id = $1 AND folder_id = $2 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer rows.Close()

	return collectFiles(rows)
}

func (r *FileRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer rows.Close()

	return collectFiles(rows)
}

func (r *FileRepository) Create(ctx context.Context, file model.File) (model.File, error) {
	query := `INSERT INTO files (id, owner_id, folder_id, name, key, content_type, size, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + fileColumns

	saved, err := scanFile(r.db.QueryRow(ctx, query,
		file.ID, file.OwnerID, file.FolderID, file.Name, file.Key,
		file.ContentType, file.Size, file.CreatedAt,
	))
	if err != nil {
		return model.File{}, fmt.Errorf("failed to create file: %w", err)
	}

	return saved, nil
}

func (r *FileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM files WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func collectFiles(rows pgx.Rows) ([]model.File, error) {
	files := []model.File{}
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read files: %w", err)
	}

	return files, nil
}
