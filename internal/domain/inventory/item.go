package inventory

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/inventoria/backend/internal/domain/shared"
)

// FieldValues holds an item's custom field payload keyed by field title.
// It implements GORM Scanner/Valuer for JSONB storage.
type FieldValues map[string]interface{}

// Value implements driver.Valuer interface for GORM to store as JSONB.
// The payload is bound as text so JSON operators work on it in every
// supported dialect.
func (v FieldValues) Value() (driver.Value, error) {
	if v == nil {
		return "{}", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner interface for GORM to read from JSONB
func (v *FieldValues) Scan(value interface{}) error {
	if value == nil {
		*v = FieldValues{}
		return nil
	}

	var bytes []byte
	switch src := value.(type) {
	case []byte:
		bytes = src
	case string:
		bytes = []byte(src)
	default:
		return errors.New("failed to scan FieldValues: unsupported type")
	}

	if len(bytes) == 0 {
		*v = FieldValues{}
		return nil
	}
	return json.Unmarshal(bytes, v)
}

// Item is one record in an inventory. Its CustomID is unique within the
// inventory; its FieldValues payload is validated against the inventory's
// custom field configuration at write time and stored as-is afterwards,
// so items created under an older configuration keep their old shape.
type Item struct {
	shared.OwnedAggregateRoot
	InventoryID uuid.UUID   `gorm:"type:uuid;not null;index;uniqueIndex:idx_item_inventory_custom_id,priority:1"`
	CustomID    string      `gorm:"type:varchar(255);not null;uniqueIndex:idx_item_inventory_custom_id,priority:2"`
	FieldValues FieldValues `gorm:"type:jsonb;not null;default:'{}'"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "items"
}

// NewItem creates a new item with an already composed identifier.
// The identifier and field payload are validated by the application layer
// before this constructor runs; here only structural invariants are checked.
func NewItem(inventoryID, creatorID uuid.UUID, customID string, values FieldValues) (*Item, error) {
	customID = strings.TrimSpace(customID)
	if inventoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INVENTORY", "Inventory ID cannot be empty")
	}
	if customID == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOM_ID", "Custom ID cannot be empty")
	}
	if values == nil {
		values = FieldValues{}
	}

	item := &Item{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(creatorID),
		InventoryID:        inventoryID,
		CustomID:           customID,
		FieldValues:        values,
	}

	item.AddDomainEvent(NewItemCreatedEvent(item))

	return item, nil
}

// UpdateCustomID replaces the item's identifier with a manually chosen one.
// Uniqueness within the inventory is the caller's concern; the persistence
// layer enforces it as a final backstop.
func (i *Item) UpdateCustomID(customID string) error {
	customID = strings.TrimSpace(customID)
	if customID == "" {
		return shared.NewDomainError("INVALID_CUSTOM_ID", "Custom ID cannot be empty")
	}

	i.CustomID = customID
	i.Touch()
	i.IncrementVersion()

	i.AddDomainEvent(NewItemUpdatedEvent(i))

	return nil
}

// UpdateFieldValues replaces the item's custom field payload wholesale
func (i *Item) UpdateFieldValues(values FieldValues) {
	if values == nil {
		values = FieldValues{}
	}
	i.FieldValues = values
	i.Touch()
	i.IncrementVersion()

	i.AddDomainEvent(NewItemUpdatedEvent(i))
}
