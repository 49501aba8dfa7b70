package inventory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inventoria/backend/internal/domain/customid"
	"github.com/inventoria/backend/internal/domain/inventory"
	"github.com/inventoria/backend/internal/domain/schema"
	"github.com/inventoria/backend/internal/domain/shared"
)

// ItemService handles item CRUD, including identifier generation and the
// field payload validation pipeline.
type ItemService struct {
	inventoryRepo inventory.InventoryRepository
	itemRepo      inventory.ItemRepository
	formatRepo    inventory.IDFormatRepository
	fieldRepo     schema.CustomFieldRepository
	sequences     customid.SequenceProvider
	logger        *zap.Logger
}

// NewItemService creates a new item service
func NewItemService(
	inventoryRepo inventory.InventoryRepository,
	itemRepo inventory.ItemRepository,
	formatRepo inventory.IDFormatRepository,
	fieldRepo schema.CustomFieldRepository,
	sequences customid.SequenceProvider,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		inventoryRepo: inventoryRepo,
		itemRepo:      itemRepo,
		formatRepo:    formatRepo,
		fieldRepo:     fieldRepo,
		sequences:     sequences,
		logger:        logger,
	}
}

// CreateItem validates the field payload, resolves the item's identifier
// and persists the new item.
//
// The identifier pipeline is intentionally non-atomic: the sequence number
// comes from a row count and the uniqueness pre-check runs before the
// insert, so two concurrent requests can interleave. The unique index on
// (inventory_id, custom_id) is the final backstop; its violation surfaces
// as shared.ErrDuplicateCustomID, which callers treat as retryable.
func (s *ItemService) CreateItem(ctx context.Context, input CreateItemInput) (*ItemInfo, error) {
	inv, err := s.inventoryRepo.FindByID(ctx, input.InventoryID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Inventory not found")
	}

	if !s.canWrite(inv, input.Actor) {
		return nil, shared.ErrForbidden
	}

	cleaned, err := s.validatePayload(ctx, input.InventoryID, input.FieldValues)
	if err != nil {
		return nil, err
	}

	customID := input.CustomID
	if customID == "" {
		customID, err = s.generateCustomID(ctx, input.InventoryID)
		if err != nil {
			return nil, err
		}
	}

	// Pre-insert uniqueness guard
	exists, err := s.itemRepo.ExistsCustomID(ctx, input.InventoryID, customID)
	if err != nil {
		s.logger.Error("Failed to check custom ID uniqueness", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to verify identifier uniqueness")
	}
	if exists {
		return nil, shared.ErrDuplicateCustomID
	}

	item, err := inventory.NewItem(input.InventoryID, input.Actor.UserID, customID, cleaned)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		// A concurrent insert may win the race between guard and save
		if err == shared.ErrDuplicateCustomID {
			return nil, err
		}
		s.logger.Error("Failed to save item", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create item")
	}

	s.logger.Info("Item created",
		zap.String("item_id", item.ID.String()),
		zap.String("inventory_id", input.InventoryID.String()),
		zap.String("custom_id", customID))

	info := NewItemInfo(item)
	return &info, nil
}

// GetItem returns one item readable by the actor
func (s *ItemService) GetItem(ctx context.Context, actor Actor, itemID uuid.UUID) (*ItemInfo, error) {
	item, inv, err := s.loadItemWithInventory(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if !s.canRead(inv, actor) {
		return nil, shared.ErrForbidden
	}

	info := NewItemInfo(item)
	return &info, nil
}

// ListItems returns the items of an inventory
func (s *ItemService) ListItems(ctx context.Context, actor Actor, inventoryID uuid.UUID, filter shared.Filter) ([]ItemInfo, error) {
	inv, err := s.inventoryRepo.FindByID(ctx, inventoryID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Inventory not found")
	}

	if !s.canRead(inv, actor) {
		return nil, shared.ErrForbidden
	}

	items, err := s.itemRepo.FindByInventory(ctx, inventoryID, filter)
	if err != nil {
		s.logger.Error("Failed to list items", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list items")
	}

	infos := make([]ItemInfo, 0, len(items))
	for i := range items {
		infos = append(infos, NewItemInfo(&items[i]))
	}
	return infos, nil
}

// UpdateItem replaces an item's payload and, when provided, its identifier
func (s *ItemService) UpdateItem(ctx context.Context, input UpdateItemInput) (*ItemInfo, error) {
	item, inv, err := s.loadItemWithInventory(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	if !s.canWrite(inv, input.Actor) {
		return nil, shared.ErrForbidden
	}

	cleaned, err := s.validatePayload(ctx, item.InventoryID, input.FieldValues)
	if err != nil {
		return nil, err
	}

	if input.CustomID != "" && input.CustomID != item.CustomID {
		exists, err := s.itemRepo.ExistsCustomID(ctx, item.InventoryID, input.CustomID)
		if err != nil {
			s.logger.Error("Failed to check custom ID uniqueness", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to verify identifier uniqueness")
		}
		if exists {
			return nil, shared.ErrDuplicateCustomID
		}
		if err := item.UpdateCustomID(input.CustomID); err != nil {
			return nil, err
		}
	}

	item.UpdateFieldValues(cleaned)

	if err := s.itemRepo.Save(ctx, item); err != nil {
		if err == shared.ErrDuplicateCustomID {
			return nil, err
		}
		s.logger.Error("Failed to save item update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update item")
	}

	info := NewItemInfo(item)
	return &info, nil
}

// DeleteItem removes an item
func (s *ItemService) DeleteItem(ctx context.Context, actor Actor, itemID uuid.UUID) error {
	item, inv, err := s.loadItemWithInventory(ctx, itemID)
	if err != nil {
		return err
	}

	if !s.canWrite(inv, actor) {
		return shared.ErrForbidden
	}

	if err := s.itemRepo.Delete(ctx, item.ID); err != nil {
		s.logger.Error("Failed to delete item", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete item")
	}

	return nil
}

// generateCustomID renders the inventory's format with the next sequence
// number drawn from the sequence provider.
func (s *ItemService) generateCustomID(ctx context.Context, inventoryID uuid.UUID) (string, error) {
	elements, err := s.resolveElements(ctx, inventoryID)
	if err != nil {
		return "", err
	}

	seq, err := s.sequences.NextSequence(ctx, inventoryID)
	if err != nil {
		s.logger.Error("Failed to resolve next sequence number", zap.Error(err))
		return "", shared.NewDomainError("INTERNAL_ERROR", "Failed to generate identifier")
	}

	return customid.Compose(elements, seq), nil
}

// resolveElements loads the inventory's saved format, falling back to the
// default when none has been saved
func (s *ItemService) resolveElements(ctx context.Context, inventoryID uuid.UUID) ([]customid.Element, error) {
	format, err := s.formatRepo.FindByInventory(ctx, inventoryID)
	if err != nil {
		if de, ok := err.(*shared.DomainError); ok && de.Code == "NOT_FOUND" {
			return customid.DefaultElements(), nil
		}
		s.logger.Error("Failed to load identifier format", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load identifier format")
	}
	return []customid.Element(format.Elements), nil
}

// validatePayload validates the payload against the inventory's current
// field configuration and returns the cleaned values
func (s *ItemService) validatePayload(ctx context.Context, inventoryID uuid.UUID, payload map[string]interface{}) (inventory.FieldValues, error) {
	fields, err := s.fieldRepo.FindByInventory(ctx, inventoryID)
	if err != nil {
		s.logger.Error("Failed to load custom fields", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load field configuration")
	}

	validator := schema.BuildValidator(fields)
	cleaned, fieldErrors := validator.Validate(payload)
	if fieldErrors != nil {
		return nil, shared.NewFieldValidationError(fieldErrors)
	}

	return inventory.FieldValues(cleaned), nil
}

func (s *ItemService) loadItemWithInventory(ctx context.Context, itemID uuid.UUID) (*inventory.Item, *inventory.Inventory, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, nil, shared.NewDomainError("NOT_FOUND", "Item not found")
	}

	inv, err := s.inventoryRepo.FindByID(ctx, item.InventoryID)
	if err != nil {
		return nil, nil, shared.NewDomainError("NOT_FOUND", "Inventory not found")
	}

	return item, inv, nil
}

func (s *ItemService) canRead(inv *inventory.Inventory, actor Actor) bool {
	if actor.IsAdmin || inv.IsPublic {
		return true
	}
	return inv.CanWrite(actor.UserID)
}

func (s *ItemService) canWrite(inv *inventory.Inventory, actor Actor) bool {
	return actor.IsAdmin || inv.CanWrite(actor.UserID)
}
