package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NajatBouz/study-organizer/internal/logger"
	"github.com/NajatBouz/study-organizer/internal/model"
)

// Contacts manages the contact list of a user.
type Contacts struct {
	store  model.ContactStore
	logger *logger.Logger
}

func NewContacts(store model.ContactStore, logger *logger.Logger) *Contacts {
	return &Contacts{store: store, logger: logger}
}

// ContactParams carries the writable contact fields.
type ContactParams struct {
	Name     string
	Role     string
	Email    string
	Phone    string
	Category string
}

func (p ContactParams) validate() error {
	if p.Name == "" || p.Role == "" || p.Email == "" || p.Phone == "" || p.Category == "" {
		return model.NewValidationError("name, role, email, phone and category are required")
	}
	return nil
}

func (s *Contacts) List(ctx context.Context, userID uuid.UUID) ([]model.Contact, error) {
	contacts, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

func (s *Contacts) Create(ctx context.Context, userID uuid.UUID, params ContactParams) (model.Contact, error) {
	if err := params.validate(); err != nil {
		return model.Contact{}, err
	}

	now := time.Now()
	contact := model.Contact{
		ID:        uuid.New(),
		OwnerID:   userID,
		Name:      params.Name,
		Role:      params.Role,
		Email:     params.Email,
		Phone:     params.Phone,
		Category:  params.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	contact, err := s.store.Create(ctx, contact)
	if err != nil {
		return model.Contact{}, fmt.Errorf("failed to create contact: %w", err)
	}

	return contact, nil
}

func (s *Contacts) Update(ctx context.Context, userID uuid.UUID, contactID uuid.UUID, params ContactParams) (model.Contact, error) {
	if err := params.validate(); err != nil {
		return model.Contact{}, err
	}

	contact, err := s.store.GetByID(ctx, contactID)
	contact, err = requireOwner(contact, err, userID)
	if err != nil {
		return model.Contact{}, err
	}

	contact.Name = params.Name
	contact.Role = params.Role
	contact.Email = params.Email
	contact.Phone = params.Phone
	contact.Category = params.Category
	contact.UpdatedAt = time.Now()

	contact, err = s.store.Update(ctx, contact)
	if err != nil {
		return model.Contact{}, fmt.Errorf("failed to update contact: %w", err)
	}

	return contact, nil
}

func (s *Contacts) Delete(ctx context.Context, userID uuid.UUID, contactID uuid.UUID) error {
	contact, err := s.store.GetByID(ctx, contactID)
	if _, err = requireOwner(contact, err, userID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, contactID); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	return nil
}
