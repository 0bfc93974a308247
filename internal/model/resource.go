package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Owned is implemented by every resource that carries an owner. Mutating
// operations are only permitted when the owner matches the requester.
type Owned interface {
	Owner() uuid.UUID
}

// Contact is a study-related person: a tutor, classmate or lecturer.
type Contact struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Role      string
	Email     string
	Phone     string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Contact) Owner() uuid.UUID { return c.OwnerID }

// Link is a saved URL, optionally filed into a folder.
type Link struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	FolderID  *uuid.UUID
	Title     string
	URL       string
	Category  string
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l Link) Owner() uuid.UUID { return l.OwnerID }

// Event is a calendar entry with a start and end time.
type Event struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Start       time.Time
	End         time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (e Event) Owner() uuid.UUID { return e.OwnerID }

// Folder groups links and files.
type Folder struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (f Folder) Owner() uuid.UUID { return f.OwnerID }

// File is the metadata row for an uploaded object. Key addresses the
// content in object storage.
type File struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	FolderID    uuid.UUID
	Name        string
	Key         string
	ContentType string
	Size        int64
	CreatedAt   time.Time
}

func (f File) Owner() uuid.UUID { return f.OwnerID }

// ContactStore defines persistence operations for contacts.
type ContactStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Contact, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Contact, error)
	SearchByOwner(ctx context.Context, ownerID uuid.UUID, term string) ([]Contact, error)
	Create(ctx context.Context, contact Contact) (Contact, error)
	Update(ctx context.Context, contact Contact) (Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LinkStore defines persistence operations for links. ListByOwner
// optionally narrows to a single folder.
type LinkStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Link, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, folderID *uuid.UUID) ([]Link, error)
	SearchByOwner(ctx context.Context, ownerID uuid.UUID, term string) ([]Link, error)
	Create(ctx context.Context, link Link) (Link, error)
	Update(ctx context.Context, link Link) (Link, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventStore defines persistence operations for events.
type EventStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Event, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Event, error)
	SearchByOwner(ctx context.Context, ownerID uuid.UUID, term string) ([]Event, error)
	Create(ctx context.Context, event Event) (Event, error)
	Update(ctx context.Context, event Event) (Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FolderStore defines persistence operations for folders.
type FolderStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Folder, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Folder, error)
	SearchByOwner(ctx context.Context, ownerID uuid.UUID, term string) ([]Folder, error)
	Create(ctx context.Context, folder Folder) (Folder, error)
	Update(ctx context.Context, folder Folder) (Folder, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FileStore defines persistence operations for file metadata.
type FileStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (File, error)
	ListByFolder(ctx context.Context, ownerID uuid.UUID, folderID uuid.UUID) ([]File, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]File, error)
	Create(ctx context.Context, file File) (File, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
