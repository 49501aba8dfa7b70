package inventory

import (
	"github.com/google/uuid"
	"github.com/inventoria/backend/internal/domain/shared"
)

// Event types for the inventory domain
const (
	EventTypeInventoryCreated = "inventory.created"
	EventTypeInventoryUpdated = "inventory.updated"
	EventTypeInventoryDeleted = "inventory.deleted"
	EventTypeAccessGranted    = "inventory.access.granted"
	EventTypeAccessRevoked    = "inventory.access.revoked"
	EventTypeItemCreated      = "inventory.item.created"
	EventTypeItemUpdated      = "inventory.item.updated"
	EventTypeItemDeleted      = "inventory.item.deleted"
	EventTypeIDFormatChanged  = "inventory.id_format.changed"
)

const (
	aggregateTypeInventory = "Inventory"
	aggregateTypeItem      = "Item"
	aggregateTypeIDFormat  = "IDFormat"
)

// InventoryCreatedEvent is published when an inventory is created
type InventoryCreatedEvent struct {
	shared.BaseDomainEvent
	Title    string    `json:"title"`
	Category Category  `json:"category"`
	IsPublic bool      `json:"is_public"`
	OwnerID  uuid.UUID `json:"owner_id"`
}

// NewInventoryCreatedEvent creates a new InventoryCreatedEvent
func NewInventoryCreatedEvent(inv *Inventory) *InventoryCreatedEvent {
	return &InventoryCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInventoryCreated, aggregateTypeInventory, inv.ID),
		Title:           inv.Title,
		Category:        inv.Category,
		IsPublic:        inv.IsPublic,
		OwnerID:         inv.CreatedBy,
	}
}

// InventoryUpdatedEvent is published when an inventory's attributes change
type InventoryUpdatedEvent struct {
	shared.BaseDomainEvent
	Title    string `json:"title"`
	IsPublic bool   `json:"is_public"`
}

// NewInventoryUpdatedEvent creates a new InventoryUpdatedEvent
func NewInventoryUpdatedEvent(inv *Inventory) *InventoryUpdatedEvent {
	return &InventoryUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInventoryUpdated, aggregateTypeInventory, inv.ID),
		Title:           inv.Title,
		IsPublic:        inv.IsPublic,
	}
}

// AccessGrantedEvent is published when a user gains write access
type AccessGrantedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
}

// NewAccessGrantedEvent creates a new AccessGrantedEvent
func NewAccessGrantedEvent(inv *Inventory, userID uuid.UUID) *AccessGrantedEvent {
	return &AccessGrantedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAccessGranted, aggregateTypeInventory, inv.ID),
		UserID:          userID,
	}
}

// AccessRevokedEvent is published when a user's write access is removed
type AccessRevokedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
}

// NewAccessRevokedEvent creates a new AccessRevokedEvent
func NewAccessRevokedEvent(inv *Inventory, userID uuid.UUID) *AccessRevokedEvent {
	return &AccessRevokedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAccessRevoked, aggregateTypeInventory, inv.ID),
		UserID:          userID,
	}
}

// ItemCreatedEvent is published when an item is created
type ItemCreatedEvent struct {
	shared.BaseDomainEvent
	InventoryID uuid.UUID `json:"inventory_id"`
	CustomID    string    `json:"custom_id"`
}

// NewItemCreatedEvent creates a new ItemCreatedEvent
func NewItemCreatedEvent(item *Item) *ItemCreatedEvent {
	return &ItemCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemCreated, aggregateTypeItem, item.ID),
		InventoryID:     item.InventoryID,
		CustomID:        item.CustomID,
	}
}

// ItemUpdatedEvent is published when an item's identifier or payload changes
type ItemUpdatedEvent struct {
	shared.BaseDomainEvent
	InventoryID uuid.UUID `json:"inventory_id"`
	CustomID    string    `json:"custom_id"`
}

// NewItemUpdatedEvent creates a new ItemUpdatedEvent
func NewItemUpdatedEvent(item *Item) *ItemUpdatedEvent {
	return &ItemUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemUpdated, aggregateTypeItem, item.ID),
		InventoryID:     item.InventoryID,
		CustomID:        item.CustomID,
	}
}

// IDFormatChangedEvent is published when an inventory's identifier format
// is created or replaced
type IDFormatChangedEvent struct {
	shared.BaseDomainEvent
	InventoryID  uuid.UUID `json:"inventory_id"`
	ElementCount int       `json:"element_count"`
}

// NewIDFormatChangedEvent creates a new IDFormatChangedEvent
func NewIDFormatChangedEvent(format *IDFormat) *IDFormatChangedEvent {
	return &IDFormatChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeIDFormatChanged, aggregateTypeIDFormat, format.ID),
		InventoryID:     format.InventoryID,
		ElementCount:    len(format.Elements),
	}
}
