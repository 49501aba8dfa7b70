package schema

import (
	"fmt"
	"strings"

	"github.com/inventoria/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MaxFieldTitleLength bounds custom field titles; the title doubles as the
// payload key of item field values
const MaxFieldTitleLength = 100

// CustomField is one administrator-defined attribute of an inventory's
// items. Its title is unique within the inventory and is the key under
// which item payload values are stored.
type CustomField struct {
	shared.BaseAggregateRoot
	InventoryID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_custom_field_inventory_title,priority:1"`
	Title       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_custom_field_inventory_title,priority:2"`
	Description string    `gorm:"type:text"`
	FieldType   FieldType `gorm:"type:varchar(30);not null;index"`
	ShowInTable bool      `gorm:"not null;default:false"`
	SortOrder   int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (CustomField) TableName() string {
	return "custom_fields"
}

// NewCustomField creates a new custom field for an inventory.
// The field type must be registered; unknown type tags never reach storage.
func NewCustomField(inventoryID uuid.UUID, title, description string, fieldType FieldType, showInTable bool, sortOrder int) (*CustomField, error) {
	title = strings.TrimSpace(title)
	if err := validateFieldTitle(title); err != nil {
		return nil, err
	}
	if !IsValidFieldType(fieldType) {
		return nil, shared.NewDomainError("INVALID_FIELD_TYPE", fmt.Sprintf("Unknown field type %q", fieldType))
	}

	field := &CustomField{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InventoryID:       inventoryID,
		Title:             title,
		Description:       strings.TrimSpace(description),
		FieldType:         fieldType,
		ShowInTable:       showInTable,
		SortOrder:         sortOrder,
	}

	field.AddDomainEvent(NewCustomFieldCreatedEvent(field))

	return field, nil
}

// Update changes the field's presentational attributes. The field type is
// immutable after creation; stored item values would otherwise silently
// change shape.
func (f *CustomField) Update(title, description string, showInTable bool) error {
	title = strings.TrimSpace(title)
	if err := validateFieldTitle(title); err != nil {
		return err
	}

	f.Title = title
	f.Description = strings.TrimSpace(description)
	f.ShowInTable = showInTable
	f.Touch()
	f.IncrementVersion()

	f.AddDomainEvent(NewCustomFieldUpdatedEvent(f))

	return nil
}

// SetSortOrder sets the display/processing position of the field
func (f *CustomField) SetSortOrder(order int) {
	f.SortOrder = order
	f.Touch()
	f.IncrementVersion()
}

func validateFieldTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Field title cannot be empty")
	}
	if len(title) > MaxFieldTitleLength {
		return shared.NewDomainError("INVALID_TITLE",
			fmt.Sprintf("Field title cannot exceed %d characters", MaxFieldTitleLength))
	}
	return nil
}
