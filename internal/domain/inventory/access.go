package inventory

import (
	"github.com/google/uuid"
	"github.com/inventoria/backend/internal/domain/shared"
)

// InventoryAccess is a write grant for one user on one private inventory.
// It is a child entity of the Inventory aggregate.
type InventoryAccess struct {
	shared.BaseEntity
	InventoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_access_inventory_user,priority:1"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_access_inventory_user,priority:2;index"`
}

// TableName returns the table name for GORM
func (InventoryAccess) TableName() string {
	return "inventory_access"
}

// NewInventoryAccess creates a write grant. Callers go through
// Inventory.GrantAccess, which enforces the aggregate invariants.
func NewInventoryAccess(inventoryID, userID uuid.UUID) *InventoryAccess {
	return &InventoryAccess{
		BaseEntity:  shared.NewBaseEntity(),
		InventoryID: inventoryID,
		UserID:      userID,
	}
}
