package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/inventoria/backend/internal/domain/customid"
	"github.com/inventoria/backend/internal/domain/inventory"
	"github.com/inventoria/backend/internal/domain/schema"
)

// Actor identifies the authenticated caller of an operation. Admins pass
// every write-permission check.
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// InventoryInfo is the read model of an inventory
type InventoryInfo struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Category     inventory.Category
	IsPublic     bool
	OwnerID      uuid.UUID
	AccessGrants []AccessGrantInfo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccessGrantInfo is the read model of one write grant
type AccessGrantInfo struct {
	UserID    uuid.UUID
	CreatedAt time.Time
}

// NewInventoryInfo maps an inventory aggregate to its DTO
func NewInventoryInfo(inv *inventory.Inventory) InventoryInfo {
	grants := make([]AccessGrantInfo, 0, len(inv.AccessGrants))
	for _, g := range inv.AccessGrants {
		grants = append(grants, AccessGrantInfo{UserID: g.UserID, CreatedAt: g.CreatedAt})
	}
	return InventoryInfo{
		ID:           inv.ID,
		Title:        inv.Title,
		Description:  inv.Description,
		Category:     inv.Category,
		IsPublic:     inv.IsPublic,
		OwnerID:      inv.CreatedBy,
		AccessGrants: grants,
		CreatedAt:    inv.CreatedAt,
		UpdatedAt:    inv.UpdatedAt,
	}
}

// CreateInventoryInput contains the input for inventory creation
type CreateInventoryInput struct {
	Actor       Actor
	Title       string
	Description string
	Category    inventory.Category
	IsPublic    bool
}

// UpdateInventoryInput contains the input for inventory update
type UpdateInventoryInput struct {
	Actor       Actor
	InventoryID uuid.UUID
	Title       string
	Description string
	Category    inventory.Category
	IsPublic    bool
}

// AccessGrantInput identifies a grant target
type AccessGrantInput struct {
	Actor       Actor
	InventoryID uuid.UUID
	UserID      uuid.UUID
}

// ItemInfo is the read model of an item
type ItemInfo struct {
	ID          uuid.UUID
	InventoryID uuid.UUID
	CustomID    string
	FieldValues map[string]interface{}
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewItemInfo maps an item aggregate to its DTO
func NewItemInfo(item *inventory.Item) ItemInfo {
	return ItemInfo{
		ID:          item.ID,
		InventoryID: item.InventoryID,
		CustomID:    item.CustomID,
		FieldValues: item.FieldValues,
		CreatedBy:   item.CreatedBy,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// CreateItemInput contains the input for item creation. When CustomID is
// empty the identifier is generated from the inventory's format.
type CreateItemInput struct {
	Actor       Actor
	InventoryID uuid.UUID
	CustomID    string
	FieldValues map[string]interface{}
}

// UpdateItemInput contains the input for item update. A non-empty CustomID
// replaces the stored identifier.
type UpdateItemInput struct {
	Actor       Actor
	ItemID      uuid.UUID
	CustomID    string
	FieldValues map[string]interface{}
}

// FieldInfo is the read model of a custom field
type FieldInfo struct {
	ID          uuid.UUID
	InventoryID uuid.UUID
	Title       string
	Description string
	FieldType   schema.FieldType
	ShowInTable bool
	SortOrder   int
	CreatedAt   time.Time
}

// NewFieldInfo maps a custom field aggregate to its DTO
func NewFieldInfo(field *schema.CustomField) FieldInfo {
	return FieldInfo{
		ID:          field.ID,
		InventoryID: field.InventoryID,
		Title:       field.Title,
		Description: field.Description,
		FieldType:   field.FieldType,
		ShowInTable: field.ShowInTable,
		SortOrder:   field.SortOrder,
		CreatedAt:   field.CreatedAt,
	}
}

// CreateFieldInput contains the input for custom field creation
type CreateFieldInput struct {
	Actor       Actor
	InventoryID uuid.UUID
	Title       string
	Description string
	FieldType   schema.FieldType
	ShowInTable bool
}

// UpdateFieldInput contains the input for custom field update
type UpdateFieldInput struct {
	Actor       Actor
	FieldID     uuid.UUID
	Title       string
	Description string
	ShowInTable bool
}

// ReorderFieldsInput carries the full ordered field ID list of an inventory
type ReorderFieldsInput struct {
	Actor       Actor
	InventoryID uuid.UUID
	FieldIDs    []uuid.UUID
}

// IDFormatInfo is the read model of an inventory's identifier format
type IDFormatInfo struct {
	InventoryID uuid.UUID
	Elements    []customid.Element
	Preview     string
	IsDefault   bool
}

// UpdateIDFormatInput contains the input for replacing an identifier format
type UpdateIDFormatInput struct {
	Actor       Actor
	InventoryID uuid.UUID
	Elements    []customid.Element
}

// PreviewIDFormatInput contains an element list to render without saving
type PreviewIDFormatInput struct {
	Elements []customid.Element
}
