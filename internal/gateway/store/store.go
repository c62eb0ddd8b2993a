package store

import (
	"context"
	"errors"

	"github.com/campuslink/wpsgate/internal/gateway/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. It exposes sub-repositories to keep concerns tidy
// and testable.
type Store interface {
	Contacts() Contacts

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Contacts interface {
	// GetContactByUnionID returns the single contact whose external union id
	// equals unionID. The match is exact equality only; the schema enforces
	// at most one record per union id. Returns ErrNotFound when absent.
	GetContactByUnionID(ctx context.Context, unionID string) (domain.Contact, error)

	// CreateContact inserts a new roster record (id is provided by the app
	// via ULID). Returns ErrAlreadyExists when the union id is taken.
	CreateContact(ctx context.Context, c domain.Contact) error

	// DeleteContact removes a roster record.
	DeleteContact(ctx context.Context, id string) error

	// IsEmpty returns true if there are no contacts.
	IsEmpty(ctx context.Context) (bool, error)
}
