package inventory

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInventory(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates inventory with trimmed attributes", func(t *testing.T) {
		inv, err := NewInventory(ownerID, "  Office Laptops  ", "  fleet tracking  ", CategoryEquipment, false)
		require.NoError(t, err)
		assert.Equal(t, "Office Laptops", inv.Title)
		assert.Equal(t, "fleet tracking", inv.Description)
		assert.Equal(t, CategoryEquipment, inv.Category)
		assert.False(t, inv.IsPublic)
		assert.Equal(t, ownerID, inv.CreatedBy)

		events := inv.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeInventoryCreated, events[0].EventType())
	})

	t.Run("defaults empty category to other", func(t *testing.T) {
		inv, err := NewInventory(ownerID, "Misc", "", "", false)
		require.NoError(t, err)
		assert.Equal(t, CategoryOther, inv.Category)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := NewInventory(ownerID, "Misc", "", Category("vehicles"), false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown category")
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := NewInventory(ownerID, "   ", "", CategoryOther, false)
		require.Error(t, err)
	})

	t.Run("rejects overlong title", func(t *testing.T) {
		_, err := NewInventory(ownerID, strings.Repeat("a", MaxInventoryTitleLength+1), "", CategoryOther, false)
		require.Error(t, err)
	})

	t.Run("rejects nil creator", func(t *testing.T) {
		_, err := NewInventory(uuid.Nil, "Misc", "", CategoryOther, false)
		require.Error(t, err)
	})
}

func TestInventoryCanWrite(t *testing.T) {
	ownerID := uuid.New()
	grantedID := uuid.New()
	strangerID := uuid.New()

	t.Run("owner can always write", func(t *testing.T) {
		inv, _ := NewInventory(ownerID, "Private", "", CategoryOther, false)
		assert.True(t, inv.CanWrite(ownerID))
	})

	t.Run("any authenticated user can write to a public inventory", func(t *testing.T) {
		inv, _ := NewInventory(ownerID, "Public", "", CategoryOther, true)
		assert.True(t, inv.CanWrite(strangerID))
		assert.False(t, inv.CanWrite(uuid.Nil))
	})

	t.Run("private inventory requires a grant", func(t *testing.T) {
		inv, _ := NewInventory(ownerID, "Private", "", CategoryOther, false)
		_, err := inv.GrantAccess(grantedID)
		require.NoError(t, err)

		assert.True(t, inv.CanWrite(grantedID))
		assert.False(t, inv.CanWrite(strangerID))
	})
}

func TestInventoryAccessGrants(t *testing.T) {
	ownerID := uuid.New()
	userID := uuid.New()

	t.Run("grant and revoke round trip", func(t *testing.T) {
		inv, _ := NewInventory(ownerID, "Private", "", CategoryOther, false)
		inv.ClearDomainEvents()

		grant, err := inv.GrantAccess(userID)
		require.NoError(t, err)
		assert.Equal(t, inv.ID, grant.InventoryID)
		assert.Equal(t, userID, grant.UserID)

		require.NoError(t, inv.RevokeAccess(userID))
		assert.False(t, inv.CanWrite(userID))

		events := inv.GetDomainEvents()
		require.Len(t, events, 2)
		assert.Equal(t, EventTypeAccessGranted, events[0].EventType())
		assert.Equal(t, EventTypeAccessRevoked, events[1].EventType())
	})

	t.Run("rejects duplicate grant", func(t *testing.T) {
		inv, _ := NewInventory(ownerID, "Private", "", CategoryOther, false)
		_, err := inv.GrantAccess(userID)
		require.NoError(t, err)
		_, err = inv.GrantAccess(userID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already has access")
	})

	t.Run("rejects granting to the owner", func(t *testing.T) {
		inv, _ := NewInventory(ownerID, "Private", "", CategoryOther, false)
		_, err := inv.GrantAccess(ownerID)
		require.Error(t, err)
	})

	t.Run("revoking an absent grant fails", func(t *testing.T) {
		inv, _ := NewInventory(ownerID, "Private", "", CategoryOther, false)
		assert.Error(t, inv.RevokeAccess(userID))
	})
}

func TestInventoryUpdate(t *testing.T) {
	inv, _ := NewInventory(uuid.New(), "Old", "old", CategoryOther, false)
	inv.ClearDomainEvents()

	require.NoError(t, inv.Update("New", "new", CategoryBook, true))
	assert.Equal(t, "New", inv.Title)
	assert.Equal(t, CategoryBook, inv.Category)
	assert.True(t, inv.IsPublic)

	events := inv.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeInventoryUpdated, events[0].EventType())
}
