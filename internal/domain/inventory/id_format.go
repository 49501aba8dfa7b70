package inventory

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/inventoria/backend/internal/domain/customid"
	"github.com/inventoria/backend/internal/domain/shared"
)

// ElementList is an ordered identifier format stored as JSONB.
// It implements GORM Scanner/Valuer.
type ElementList []customid.Element

// Value implements driver.Valuer interface for GORM to store as JSONB
func (l ElementList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner interface for GORM to read from JSONB
func (l *ElementList) Scan(value interface{}) error {
	if value == nil {
		*l = ElementList{}
		return nil
	}

	var bytes []byte
	switch src := value.(type) {
	case []byte:
		bytes = src
	case string:
		bytes = []byte(src)
	default:
		return errors.New("failed to scan ElementList: unsupported type")
	}

	if len(bytes) == 0 {
		*l = ElementList{}
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// IDFormat is the persisted identifier format of one inventory. At most one
// row exists per inventory; inventories without a row use the default format
// until an administrator saves a custom one.
type IDFormat struct {
	shared.BaseAggregateRoot
	InventoryID uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex"`
	Elements    ElementList `gorm:"type:jsonb;not null;default:'[]'"`
}

// TableName returns the table name for GORM
func (IDFormat) TableName() string {
	return "id_formats"
}

// NewIDFormat creates a format row for an inventory after validating the
// element list
func NewIDFormat(inventoryID uuid.UUID, elements []customid.Element) (*IDFormat, error) {
	if inventoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INVENTORY", "Inventory ID cannot be empty")
	}
	if err := customid.ValidateElements(elements); err != nil {
		return nil, err
	}

	format := &IDFormat{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InventoryID:       inventoryID,
		Elements:          ElementList(elements),
	}

	format.AddDomainEvent(NewIDFormatChangedEvent(format))

	return format, nil
}

// Replace swaps the element list wholesale. Existing item identifiers are
// never rewritten; the new format applies to subsequent items only.
func (f *IDFormat) Replace(elements []customid.Element) error {
	if err := customid.ValidateElements(elements); err != nil {
		return err
	}

	f.Elements = ElementList(elements)
	f.Touch()
	f.IncrementVersion()

	f.AddDomainEvent(NewIDFormatChangedEvent(f))

	return nil
}
