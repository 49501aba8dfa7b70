package inventory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inventoria/backend/internal/domain/inventory"
	"github.com/inventoria/backend/internal/domain/shared"
)

// InventoryService handles inventory CRUD and access grant management
type InventoryService struct {
	inventoryRepo inventory.InventoryRepository
	logger        *zap.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo inventory.InventoryRepository, logger *zap.Logger) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

// CreateInventory creates a new inventory owned by the actor
func (s *InventoryService) CreateInventory(ctx context.Context, input CreateInventoryInput) (*InventoryInfo, error) {
	inv, err := inventory.NewInventory(input.Actor.UserID, input.Title, input.Description, input.Category, input.IsPublic)
	if err != nil {
		return nil, err
	}

	if err := s.inventoryRepo.Save(ctx, inv); err != nil {
		s.logger.Error("Failed to save inventory", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create inventory")
	}

	s.logger.Info("Inventory created",
		zap.String("inventory_id", inv.ID.String()),
		zap.String("owner_id", input.Actor.UserID.String()))

	info := NewInventoryInfo(inv)
	return &info, nil
}

// GetInventory returns one inventory readable by the actor
func (s *InventoryService) GetInventory(ctx context.Context, actor Actor, id uuid.UUID) (*InventoryInfo, error) {
	inv, err := s.loadInventory(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.canRead(inv, actor) {
		return nil, shared.ErrForbidden
	}

	info := NewInventoryInfo(inv)
	return &info, nil
}

// ListInventories returns inventories visible to the actor. Admins see all.
func (s *InventoryService) ListInventories(ctx context.Context, actor Actor, filter shared.Filter) ([]InventoryInfo, error) {
	var (
		inventories []inventory.Inventory
		err         error
	)
	if actor.IsAdmin {
		inventories, err = s.inventoryRepo.FindAll(ctx, filter)
	} else {
		inventories, err = s.inventoryRepo.FindVisibleTo(ctx, actor.UserID, filter)
	}
	if err != nil {
		s.logger.Error("Failed to list inventories", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list inventories")
	}

	infos := make([]InventoryInfo, 0, len(inventories))
	for i := range inventories {
		infos = append(infos, NewInventoryInfo(&inventories[i]))
	}
	return infos, nil
}

// UpdateInventory updates an inventory's descriptive attributes. Only the
// owner or an admin may change them.
func (s *InventoryService) UpdateInventory(ctx context.Context, input UpdateInventoryInput) (*InventoryInfo, error) {
	inv, err := s.loadInventory(ctx, input.InventoryID)
	if err != nil {
		return nil, err
	}

	if !s.canManage(inv, input.Actor) {
		return nil, shared.ErrForbidden
	}

	if err := inv.Update(input.Title, input.Description, input.Category, input.IsPublic); err != nil {
		return nil, err
	}

	if err := s.inventoryRepo.Save(ctx, inv); err != nil {
		s.logger.Error("Failed to save inventory update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update inventory")
	}

	info := NewInventoryInfo(inv)
	return &info, nil
}

// DeleteInventory removes an inventory; the persistence layer cascades to
// its items, fields and identifier format
func (s *InventoryService) DeleteInventory(ctx context.Context, actor Actor, id uuid.UUID) error {
	inv, err := s.loadInventory(ctx, id)
	if err != nil {
		return err
	}

	if !s.canManage(inv, actor) {
		return shared.ErrForbidden
	}

	if err := s.inventoryRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete inventory", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete inventory")
	}

	s.logger.Info("Inventory deleted",
		zap.String("inventory_id", id.String()),
		zap.String("actor_id", actor.UserID.String()))

	return nil
}

// ListAccessGrants returns the write grants of an inventory
func (s *InventoryService) ListAccessGrants(ctx context.Context, actor Actor, inventoryID uuid.UUID) ([]AccessGrantInfo, error) {
	inv, err := s.loadInventory(ctx, inventoryID)
	if err != nil {
		return nil, err
	}

	if !s.canManage(inv, actor) {
		return nil, shared.ErrForbidden
	}

	grants := make([]AccessGrantInfo, 0, len(inv.AccessGrants))
	for _, g := range inv.AccessGrants {
		grants = append(grants, AccessGrantInfo{UserID: g.UserID, CreatedAt: g.CreatedAt})
	}
	return grants, nil
}

// GrantAccess adds a write grant on a private inventory
func (s *InventoryService) GrantAccess(ctx context.Context, input AccessGrantInput) error {
	inv, err := s.loadInventory(ctx, input.InventoryID)
	if err != nil {
		return err
	}

	if !s.canManage(inv, input.Actor) {
		return shared.ErrForbidden
	}

	if _, err := inv.GrantAccess(input.UserID); err != nil {
		return err
	}

	if err := s.inventoryRepo.Save(ctx, inv); err != nil {
		s.logger.Error("Failed to save access grant", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to grant access")
	}

	s.logger.Info("Access granted",
		zap.String("inventory_id", input.InventoryID.String()),
		zap.String("user_id", input.UserID.String()))

	return nil
}

// RevokeAccess removes a write grant
func (s *InventoryService) RevokeAccess(ctx context.Context, input AccessGrantInput) error {
	inv, err := s.loadInventory(ctx, input.InventoryID)
	if err != nil {
		return err
	}

	if !s.canManage(inv, input.Actor) {
		return shared.ErrForbidden
	}

	if err := inv.RevokeAccess(input.UserID); err != nil {
		return err
	}

	if err := s.inventoryRepo.Save(ctx, inv); err != nil {
		s.logger.Error("Failed to save access revocation", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke access")
	}

	return nil
}

func (s *InventoryService) loadInventory(ctx context.Context, id uuid.UUID) (*inventory.Inventory, error) {
	inv, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Inventory not found")
	}
	return inv, nil
}

// canRead reports whether the actor may view the inventory
func (s *InventoryService) canRead(inv *inventory.Inventory, actor Actor) bool {
	if actor.IsAdmin || inv.IsPublic {
		return true
	}
	return inv.CanWrite(actor.UserID)
}

// canManage reports whether the actor may change configuration and grants
func (s *InventoryService) canManage(inv *inventory.Inventory, actor Actor) bool {
	return actor.IsAdmin || inv.IsOwnedBy(actor.UserID)
}
