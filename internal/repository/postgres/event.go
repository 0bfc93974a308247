package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/NajatBouz/study-organizer/internal/model"
)

var _ model.EventStore = (*EventRepository)(nil)

type EventRepository struct {
	db *Connection
}

func NewEventRepository(db *Connection) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

const eventColumns = `id, owner_id, title, start_at, end_at, description, created_at, updated_at`

func scanEvent(row pgx.Row) (model.Event, error) {
	var e model.Event
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.Title, &e.Start, &e.End, &e.Description,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Event{}, model.ErrNotFound
		}
		return model.Event{}, fmt.Errorf("failed to get event by id: %w", err)
	}

	return event, nil
}

func (r *EventRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE owner_id = $1 ORDER BY start_at`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventRepository) SearchByOwner(ctx context.Context, ownerID uuid.UUID, term string) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE owner_id = $1 AND title ILIKE '%' || $2 || '%' ORDER BY start_at`

	rows, err := r.db.Query(ctx, query, ownerID, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventRepository) Create(ctx context.Context, event model.Event) (model.Event, error) {
	query := `INSERT INTO events (id, owner_id, title, start_at, end_at, description, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + eventColumns

	saved, err := scanEvent(r.db.QueryRow(ctx, query,
		event.ID, event.OwnerID, event.Title, event.Start, event.End,
		event.Description, event.CreatedAt, event.UpdatedAt,
	))
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	return saved, nil
}

func (r *EventRepository) Update(ctx context.Context, event model.Event) (model.Event, error) {
	query := `UPDATE events SET title = $2, start_at = $3, end_at = $4, description = $5, updated_at = $6
			  WHERE id = $1
			  RETURNING ` + eventColumns

	saved, err := scanEvent(r.db.QueryRow(ctx, query,
		event.ID, event.Title, event.Start, event.End, event.Description, event.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Event{}, model.ErrNotFound
		}
		return model.Event{}, fmt.Errorf("failed to update event: %w", err)
	}

	return saved, nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM events WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func collectEvents(rows pgx.Rows) ([]model.Event, error) {
	events := []model.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	return events, nil
}
