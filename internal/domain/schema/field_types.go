package schema

import (
	"fmt"

	"github.com/inventoria/backend/internal/domain/shared"
)

// FieldType identifies one kind of administrator-defined custom field
type FieldType string

const (
	FieldSingleLineText FieldType = "single_line_text"
	FieldMultiLineText  FieldType = "multi_line_text"
	FieldNumber         FieldType = "number"
	FieldDocumentLink   FieldType = "document_link"
	FieldBoolean        FieldType = "boolean"
)

// FieldTypeSpec describes the registry entry for one field type: how many
// fields of the type a single inventory may carry, and the shape rule its
// values must satisfy. MaxLength applies to the text variants only.
type FieldTypeSpec struct {
	MaxPerInventory int
	MaxLength       int
}

// fieldTypeRegistry is the static registry of supported field types.
// All value shapes are nullable.
var fieldTypeRegistry = map[FieldType]FieldTypeSpec{
	FieldSingleLineText: {MaxPerInventory: 3, MaxLength: 255},
	FieldMultiLineText:  {MaxPerInventory: 3, MaxLength: 5000},
	FieldNumber:         {MaxPerInventory: 3},
	FieldDocumentLink:   {MaxPerInventory: 3},
	FieldBoolean:        {MaxPerInventory: 3},
}

// SupportedFieldTypes returns every registered field type, in a stable order
func SupportedFieldTypes() []FieldType {
	return []FieldType{
		FieldSingleLineText,
		FieldMultiLineText,
		FieldNumber,
		FieldDocumentLink,
		FieldBoolean,
	}
}

// LookupFieldType returns the registry entry for a field type
func LookupFieldType(t FieldType) (FieldTypeSpec, bool) {
	spec, ok := fieldTypeRegistry[t]
	return spec, ok
}

// IsValidFieldType returns true if the type tag is registered.
// Unknown tags are rejected at field-creation time so that validation can
// assume every configured field has a known type.
func IsValidFieldType(t FieldType) bool {
	_, ok := fieldTypeRegistry[t]
	return ok
}

// MaxFieldsOfType returns the per-inventory maximum for a field type.
// Returns 0 for unregistered types.
func MaxFieldsOfType(t FieldType) int {
	return fieldTypeRegistry[t].MaxPerInventory
}

// CheckTypeQuota verifies that adding one more field of the given type would
// not exceed the registry maximum, given the current count in the inventory
func CheckTypeQuota(t FieldType, existingCount int) error {
	spec, ok := fieldTypeRegistry[t]
	if !ok {
		return shared.NewDomainError("INVALID_FIELD_TYPE", fmt.Sprintf("Unknown field type %q", t))
	}
	if existingCount >= spec.MaxPerInventory {
		return shared.NewDomainError("FIELD_TYPE_LIMIT",
			fmt.Sprintf("Maximum %d fields of type %s allowed per inventory", spec.MaxPerInventory, t))
	}
	return nil
}
