package schema

import (
	"github.com/inventoria/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Event types for custom field lifecycle
const (
	EventTypeCustomFieldCreated   = "schema.custom_field.created"
	EventTypeCustomFieldUpdated   = "schema.custom_field.updated"
	EventTypeCustomFieldDeleted   = "schema.custom_field.deleted"
	EventTypeCustomFieldReordered = "schema.custom_field.reordered"
)

const aggregateTypeCustomField = "CustomField"

// CustomFieldCreatedEvent is published when a custom field is created
type CustomFieldCreatedEvent struct {
	shared.BaseDomainEvent
	InventoryID uuid.UUID `json:"inventory_id"`
	Title       string    `json:"title"`
	FieldType   FieldType `json:"field_type"`
}

// NewCustomFieldCreatedEvent creates a new CustomFieldCreatedEvent
func NewCustomFieldCreatedEvent(field *CustomField) *CustomFieldCreatedEvent {
	return &CustomFieldCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomFieldCreated, aggregateTypeCustomField, field.ID),
		InventoryID:     field.InventoryID,
		Title:           field.Title,
		FieldType:       field.FieldType,
	}
}

// CustomFieldUpdatedEvent is published when a custom field is updated
type CustomFieldUpdatedEvent struct {
	shared.BaseDomainEvent
	InventoryID uuid.UUID `json:"inventory_id"`
	Title       string    `json:"title"`
}

// NewCustomFieldUpdatedEvent creates a new CustomFieldUpdatedEvent
func NewCustomFieldUpdatedEvent(field *CustomField) *CustomFieldUpdatedEvent {
	return &CustomFieldUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomFieldUpdated, aggregateTypeCustomField, field.ID),
		InventoryID:     field.InventoryID,
		Title:           field.Title,
	}
}

// CustomFieldDeletedEvent is published when a custom field is deleted.
// Deletion also expunges the field's key from stored item payloads.
type CustomFieldDeletedEvent struct {
	shared.BaseDomainEvent
	InventoryID uuid.UUID `json:"inventory_id"`
	Title       string    `json:"title"`
}

// NewCustomFieldDeletedEvent creates a new CustomFieldDeletedEvent
func NewCustomFieldDeletedEvent(field *CustomField) *CustomFieldDeletedEvent {
	return &CustomFieldDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomFieldDeleted, aggregateTypeCustomField, field.ID),
		InventoryID:     field.InventoryID,
		Title:           field.Title,
	}
}
