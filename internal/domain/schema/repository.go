package schema

import (
	"context"

	"github.com/google/uuid"
)

// CustomFieldRepository defines the interface for custom field persistence
type CustomFieldRepository interface {
	// FindByID finds a custom field by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*CustomField, error)

	// FindByInventory finds all fields of an inventory ordered by sort order
	FindByInventory(ctx context.Context, inventoryID uuid.UUID) ([]CustomField, error)

	// CountByType counts fields of one type within an inventory
	CountByType(ctx context.Context, inventoryID uuid.UUID, fieldType FieldType) (int64, error)

	// ExistsTitle checks whether a field title is already taken within an
	// inventory
	ExistsTitle(ctx context.Context, inventoryID uuid.UUID, title string) (bool, error)

	// Save creates or updates a custom field
	Save(ctx context.Context, field *CustomField) error

	// SaveAll persists sort order changes for a set of fields atomically
	SaveAll(ctx context.Context, fields []CustomField) error

	// Delete deletes a custom field and expunges its title key from the
	// stored payload of every item in the inventory, both in one
	// transaction
	Delete(ctx context.Context, id uuid.UUID) error
}
