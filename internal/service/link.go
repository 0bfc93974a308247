package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NajatBouz/study-organizer/internal/logger"
	"github.com/NajatBouz/study-organizer/internal/model"
)

// Links manages saved URLs, optionally filed into folders.
type Links struct {
	store  model.LinkStore
	logger *logger.Logger
}

func NewLinks(store model.LinkStore, logger *logger.Logger) *Links {
	return &Links{store: store, logger: logger}
}

// LinkParams carries the writable link fields.
type LinkParams struct {
	Title    string
	URL      string
	Category string
	Note     string
	FolderID *uuid.UUID
}

func (p LinkParams) validate() error {
	if p.Title == "" || p.URL == "" {
		return model.NewValidationError("title and url are required")
	}
	return nil
}

// List returns the user's links, optionally narrowed to one folder.
func (s *Links) List(ctx context.Context, userID uuid.UUID, folderID *uuid.UUID) ([]model.Link, error) {
	links, err := s.store.ListByOwner(ctx, userID, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

func (s *Links) Create(ctx context.Context, userID uuid.UUID, params LinkParams) (model.Link, error) {
	if err := params.validate(); err != nil {
		return model.Link{}, err
	}

	now := time.Now()
	link := model.Link{
		ID:        uuid.New(),
		OwnerID:   userID,
		FolderID:  params.FolderID,
		Title:     params.Title,
		URL:       params.URL,
		Category:  params.Category,
		Note:      params.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}

	link, err := s.store.Create(ctx, link)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to create link: %w", err)
	}

	return link, nil
}

func (s *Links) Update(ctx context.Context, userID uuid.UUID, linkID uuid.UUID, params LinkParams) (model.Link, error) {
	if err := params.validate(); err != nil {
		return model.Link{}, err
	}

	link, err := s.store.GetByID(ctx, linkID)
	link, err = requireOwner(link, err, userID)
	if err != nil {
		return model.Link{}, err
	}

	link.Title = params.Title
	link.URL = params.URL
	link.Category = params.Category
	link.Note = params.Note
	link.FolderID = params.FolderID
	link.UpdatedAt = time.Now()

	link, err = s.store.Update(ctx, link)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to update link: %w", err)
	}

	return link, nil
}

func (s *Links) Delete(ctx context.Context, userID uuid.UUID, linkID uuid.UUID) error {
	link, err := s.store.GetByID(ctx, linkID)
	if _, err = requireOwner(link, err, userID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, linkID); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	return nil
}
