package schema

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomField(t *testing.T) {
	inventoryID := uuid.New()

	t.Run("creates field with trimmed title and description", func(t *testing.T) {
		field, err := NewCustomField(inventoryID, "  Color  ", "  primary color  ", FieldSingleLineText, true, 2)
		require.NoError(t, err)
		assert.Equal(t, "Color", field.Title)
		assert.Equal(t, "primary color", field.Description)
		assert.Equal(t, FieldSingleLineText, field.FieldType)
		assert.True(t, field.ShowInTable)
		assert.Equal(t, 2, field.SortOrder)
		assert.NotEqual(t, uuid.Nil, field.ID)
	})

	t.Run("emits created event", func(t *testing.T) {
		field, err := NewCustomField(inventoryID, "Price", "", FieldNumber, false, 0)
		require.NoError(t, err)
		events := field.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeCustomFieldCreated, events[0].EventType())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := NewCustomField(inventoryID, "   ", "", FieldNumber, false, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("rejects overlong title", func(t *testing.T) {
		_, err := NewCustomField(inventoryID, strings.Repeat("a", MaxFieldTitleLength+1), "", FieldNumber, false, 0)
		require.Error(t, err)
	})

	t.Run("rejects unknown field type", func(t *testing.T) {
		_, err := NewCustomField(inventoryID, "Barcode", "", FieldType("barcode"), false, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown field type")
	})
}

func TestCustomFieldUpdate(t *testing.T) {
	field, err := NewCustomField(uuid.New(), "Color", "old", FieldSingleLineText, false, 0)
	require.NoError(t, err)
	field.ClearDomainEvents()

	t.Run("updates presentational attributes", func(t *testing.T) {
		require.NoError(t, field.Update("Shade", "new", true))
		assert.Equal(t, "Shade", field.Title)
		assert.Equal(t, "new", field.Description)
		assert.True(t, field.ShowInTable)
		assert.Equal(t, FieldSingleLineText, field.FieldType)

		events := field.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeCustomFieldUpdated, events[0].EventType())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		assert.Error(t, field.Update("", "d", false))
	})
}

func TestCheckTypeQuota(t *testing.T) {
	t.Run("allows adding below the limit", func(t *testing.T) {
		assert.NoError(t, CheckTypeQuota(FieldNumber, 0))
		assert.NoError(t, CheckTypeQuota(FieldNumber, 2))
	})

	t.Run("rejects adding at the limit", func(t *testing.T) {
		err := CheckTypeQuota(FieldNumber, 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Maximum 3 fields")
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		err := CheckTypeQuota(FieldType("barcode"), 0)
		require.Error(t, err)
	})
}

func TestFieldTypeRegistry(t *testing.T) {
	t.Run("every supported type has a registry entry", func(t *testing.T) {
		for _, typ := range SupportedFieldTypes() {
			spec, ok := LookupFieldType(typ)
			require.True(t, ok, typ)
			assert.Positive(t, spec.MaxPerInventory, typ)
		}
	})

	t.Run("text variants carry length limits", func(t *testing.T) {
		single, _ := LookupFieldType(FieldSingleLineText)
		multi, _ := LookupFieldType(FieldMultiLineText)
		assert.Equal(t, 255, single.MaxLength)
		assert.Equal(t, 5000, multi.MaxLength)
	})
}
