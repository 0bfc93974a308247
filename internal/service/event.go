package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NajatBouz/study-organizer/internal/logger"
	"github.com/NajatBouz/study-organizer/internal/model"
)

// Events manages calendar entries.
type Events struct {
	store  model.EventStore
	logger *logger.Logger
}

func NewEvents(store model.EventStore, logger *logger.Logger) *Events {
	return &Events{store: store, logger: logger}
}

// EventParams carries the writable event fields.
type EventParams struct {
	Title       string
	Start       time.Time
	End         time.Time
	Description string
}

func (p EventParams) validate() error {
	if p.Title == "" {
		return model.NewValidationError("title is required")
	}
	if p.Start.IsZero() || p.End.IsZero() {
		return model.NewValidationError("start and end are required")
	}
	if p.End.Before(p.Start) {
		return model.NewValidationError("end must not be before start")
	}
	return nil
}

func (s *Events) List(ctx context.Context, userID uuid.UUID) ([]model.Event, error) {
	events, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *Events) Create(ctx context.Context, userID uuid.UUID, params EventParams) (model.Event, error) {
	if err := params.validate(); err != nil {
		return model.Event{}, err
	}

	now := time.Now()
	event := model.Event{
		ID:          uuid.New(),
		OwnerID:     userID,
		Title:       params.Title,
		Start:       params.Start,
		End:         params.End,
		Description: params.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	event, err := s.store.Create(ctx, event)
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

func (s *Events) Update(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, params EventParams) (model.Event, error) {
	if err := params.validate(); err != nil {
		return model.Event{}, err
	}

	event, err := s.store.GetByID(ctx, eventID)
	event, err = requireOwner(event, err, userID)
	if err != nil {
		return model.Event{}, err
	}

	event.Title = params.Title
	event.Start = params.Start
	event.End = params.End
	event.Description = params.Description
	event.UpdatedAt = time.Now()

	event, err = s.store.Update(ctx, event)
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

func (s *Events) Delete(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) error {
	event, err := s.store.GetByID(ctx, eventID)
	if _, err = requireOwner(event, err, userID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}
