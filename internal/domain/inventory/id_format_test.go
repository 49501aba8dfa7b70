package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventoria/backend/internal/domain/customid"
)

func TestNewIDFormat(t *testing.T) {
	inventoryID := uuid.New()

	t.Run("creates format from a valid element list", func(t *testing.T) {
		format, err := NewIDFormat(inventoryID, customid.DefaultElements())
		require.NoError(t, err)
		assert.Equal(t, inventoryID, format.InventoryID)
		assert.Len(t, format.Elements, 2)

		events := format.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeIDFormatChanged, events[0].EventType())
	})

	t.Run("rejects empty element list", func(t *testing.T) {
		_, err := NewIDFormat(inventoryID, nil)
		require.Error(t, err)
	})

	t.Run("rejects nil inventory", func(t *testing.T) {
		_, err := NewIDFormat(uuid.Nil, customid.DefaultElements())
		require.Error(t, err)
	})
}

func TestIDFormatReplace(t *testing.T) {
	format, err := NewIDFormat(uuid.New(), customid.DefaultElements())
	require.NoError(t, err)
	format.ClearDomainEvents()

	t.Run("swaps elements wholesale", func(t *testing.T) {
		replacement := []customid.Element{
			{Type: customid.ElementFixedText, Value: "LAPTOP_"},
			{Type: customid.ElementGuid},
		}
		require.NoError(t, format.Replace(replacement))
		require.Len(t, format.Elements, 2)
		assert.Equal(t, customid.ElementGuid, format.Elements[1].Type)

		events := format.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeIDFormatChanged, events[0].EventType())
	})

	t.Run("rejects invalid replacement and keeps current elements", func(t *testing.T) {
		before := format.Elements
		require.Error(t, format.Replace([]customid.Element{{Type: customid.ElementType("barcode")}}))
		assert.Equal(t, before, format.Elements)
	})
}

func TestElementListScan(t *testing.T) {
	t.Run("round trips through jsonb", func(t *testing.T) {
		list := ElementList(customid.DefaultElements())
		value, err := list.Value()
		require.NoError(t, err)

		var decoded ElementList
		require.NoError(t, decoded.Scan(value))
		require.Len(t, decoded, 2)
		assert.Equal(t, customid.ElementFixedText, decoded[0].Type)
		assert.True(t, decoded[1].Format.LeadingZeros)
	})

	t.Run("nil column yields empty list", func(t *testing.T) {
		var decoded ElementList
		require.NoError(t, decoded.Scan(nil))
		assert.Empty(t, decoded)
	})
}
