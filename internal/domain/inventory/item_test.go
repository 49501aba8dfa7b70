package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	inventoryID := uuid.New()
	creatorID := uuid.New()

	t.Run("creates item with identifier and payload", func(t *testing.T) {
		item, err := NewItem(inventoryID, creatorID, "ITEM-0001", FieldValues{"Color": "red"})
		require.NoError(t, err)
		assert.Equal(t, "ITEM-0001", item.CustomID)
		assert.Equal(t, "red", item.FieldValues["Color"])
		assert.Equal(t, creatorID, item.CreatedBy)

		events := item.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeItemCreated, events[0].EventType())
	})

	t.Run("trims the identifier", func(t *testing.T) {
		item, err := NewItem(inventoryID, creatorID, "  ITEM-0002  ", nil)
		require.NoError(t, err)
		assert.Equal(t, "ITEM-0002", item.CustomID)
	})

	t.Run("nil payload becomes empty map", func(t *testing.T) {
		item, err := NewItem(inventoryID, creatorID, "ITEM-0003", nil)
		require.NoError(t, err)
		assert.NotNil(t, item.FieldValues)
		assert.Empty(t, item.FieldValues)
	})

	t.Run("rejects empty identifier", func(t *testing.T) {
		_, err := NewItem(inventoryID, creatorID, "   ", nil)
		require.Error(t, err)
	})

	t.Run("rejects nil inventory", func(t *testing.T) {
		_, err := NewItem(uuid.Nil, creatorID, "ITEM-0004", nil)
		require.Error(t, err)
	})
}

func TestItemUpdates(t *testing.T) {
	item, err := NewItem(uuid.New(), uuid.New(), "ITEM-0001", FieldValues{"Color": "red"})
	require.NoError(t, err)
	item.ClearDomainEvents()

	t.Run("replaces identifier", func(t *testing.T) {
		require.NoError(t, item.UpdateCustomID("LAPTOP-42"))
		assert.Equal(t, "LAPTOP-42", item.CustomID)
	})

	t.Run("rejects empty replacement identifier", func(t *testing.T) {
		assert.Error(t, item.UpdateCustomID("  "))
	})

	t.Run("replaces payload wholesale", func(t *testing.T) {
		item.UpdateFieldValues(FieldValues{"Price": 9.99})
		assert.NotContains(t, item.FieldValues, "Color")
		assert.Equal(t, 9.99, item.FieldValues["Price"])
	})

	t.Run("nil replacement payload becomes empty map", func(t *testing.T) {
		item.UpdateFieldValues(nil)
		assert.NotNil(t, item.FieldValues)
		assert.Empty(t, item.FieldValues)
	})
}

func TestFieldValuesScan(t *testing.T) {
	t.Run("scans jsonb bytes", func(t *testing.T) {
		var v FieldValues
		require.NoError(t, v.Scan([]byte(`{"Color":"red","Price":9.99}`)))
		assert.Equal(t, "red", v["Color"])
	})

	t.Run("nil column yields empty map", func(t *testing.T) {
		var v FieldValues
		require.NoError(t, v.Scan(nil))
		assert.NotNil(t, v)
		assert.Empty(t, v)
	})

	t.Run("nil map stores as empty object", func(t *testing.T) {
		var v FieldValues
		value, err := v.Value()
		require.NoError(t, err)
		assert.Equal(t, "{}", value)
	})
}
