package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/NajatBouz/study-organizer/internal/logger"
	"github.com/NajatBouz/study-organizer/internal/model"
)

// Search runs a case-insensitive substring search across the user's links,
// folders, contacts and events.
type Search struct {
	contacts model.ContactStore
	links    model.LinkStore
	events   model.EventStore
	folders  model.FolderStore
	logger   *logger.Logger
}

func NewSearch(
	contacts model.ContactStore,
	links model.LinkStore,
	events model.EventStore,
	folders model.FolderStore,
	logger *logger.Logger,
) *Search {
	return &Search{
		contacts: contacts,
		links:    links,
		events:   events,
		folders:  folders,
		logger:   logger,
	}
}

// Results groups matches by resource type. Slices are never nil so the
// JSON encoding always carries arrays.
type Results struct {
	Links    []model.Link    `json:"links"`
	Folders  []model.Folder  `json:"folders"`
	Contacts []model.Contact `json:"contacts"`
	Events   []model.Event   `json:"events"`
}

func emptyResults() Results {
	return Results{
		Links:    []model.Link{},
		Folders:  []model.Folder{},
		Contacts: []model.Contact{},
		Events:   []model.Event{},
	}
}

// Run executes the search for one user. An empty term matches nothing.
func (s *Search) Run(ctx context.Context, userID uuid.UUID, term string) (Results, error) {
	results := emptyResults()
	if term == "" {
		return results, nil
	}

	links, err := s.links.SearchByOwner(ctx, userID, term)
	if err != nil {
		return Results{}, fmt.Errorf("failed to search links: %w", err)
	}
	folders, err := s.folders.SearchByOwner(ctx, userID, term)
	if err != nil {
		return Results{}, fmt.Errorf("failed to search folders: %w", err)
	}
	contacts, err := s.contacts.SearchByOwner(ctx, userID, term)
	if err != nil {
		return Results{}, fmt.Errorf("failed to search contacts: %w", err)
	}
	events, err := s.events.SearchByOwner(ctx, userID, term)
	if err != nil {
		return Results{}, fmt.Errorf("failed to search events: %w", err)
	}

	if links != nil {
		results.Links = links
	}
	if folders != nil {
		results.Folders = folders
	}
	if contacts != nil {
		results.Contacts = contacts
	}
	if events != nil {
		results.Events = events
	}

	return results, nil
}
