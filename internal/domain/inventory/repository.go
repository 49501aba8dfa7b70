package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/inventoria/backend/internal/domain/shared"
)

// InventoryRepository defines the interface for inventory persistence
type InventoryRepository interface {
	// FindByID finds an inventory by its ID, access grants included
	FindByID(ctx context.Context, id uuid.UUID) (*Inventory, error)

	// FindAll finds inventories matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Inventory, error)

	// FindVisibleTo finds inventories the user may read: public ones plus
	// those owned by or shared with the user
	FindVisibleTo(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Inventory, error)

	// FindByOwner finds inventories created by the user
	FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Inventory, error)

	// Save creates or updates an inventory and its access grants
	Save(ctx context.Context, inv *Inventory) error

	// Delete deletes an inventory and cascades to its items, fields and
	// identifier format
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts inventories matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ItemRepository defines the interface for item persistence.
//
// ExistsCustomID is the pre-insert uniqueness guard of the identifier
// pipeline; the sequence number itself comes through the
// customid.SequenceProvider port. Neither is atomic with the insert; the
// unique index on (inventory_id, custom_id) is the final backstop and a
// violation there surfaces as shared.ErrDuplicateCustomID.
type ItemRepository interface {
	// FindByID finds an item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// FindByInventory finds all items of an inventory
	FindByInventory(ctx context.Context, inventoryID uuid.UUID, filter shared.Filter) ([]Item, error)

	// FindByCustomID finds an item by its identifier within an inventory
	FindByCustomID(ctx context.Context, inventoryID uuid.UUID, customID string) (*Item, error)

	// CountByInventory counts the items of an inventory
	CountByInventory(ctx context.Context, inventoryID uuid.UUID) (int64, error)

	// ExistsCustomID checks whether an identifier is already taken within
	// an inventory
	ExistsCustomID(ctx context.Context, inventoryID uuid.UUID, customID string) (bool, error)

	// Save creates or updates an item. A unique index violation on the
	// identifier is translated to shared.ErrDuplicateCustomID.
	Save(ctx context.Context, item *Item) error

	// Delete deletes an item
	Delete(ctx context.Context, id uuid.UUID) error
}

// IDFormatRepository defines the interface for identifier format persistence
type IDFormatRepository interface {
	// FindByInventory finds the format row of an inventory. Returns
	// shared.ErrNotFound when the inventory still uses the default format.
	FindByInventory(ctx context.Context, inventoryID uuid.UUID) (*IDFormat, error)

	// Save creates or updates a format row
	Save(ctx context.Context, format *IDFormat) error

	// DeleteByInventory removes the format row of an inventory
	DeleteByInventory(ctx context.Context, inventoryID uuid.UUID) error
}
