package inventory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inventoria/backend/internal/domain/customid"
	"github.com/inventoria/backend/internal/domain/inventory"
	"github.com/inventoria/backend/internal/domain/shared"
)

// IDFormatService manages per-inventory identifier formats
type IDFormatService struct {
	inventoryRepo inventory.InventoryRepository
	formatRepo    inventory.IDFormatRepository
	logger        *zap.Logger
}

// NewIDFormatService creates a new identifier format service
func NewIDFormatService(
	inventoryRepo inventory.InventoryRepository,
	formatRepo inventory.IDFormatRepository,
	logger *zap.Logger,
) *IDFormatService {
	return &IDFormatService{
		inventoryRepo: inventoryRepo,
		formatRepo:    formatRepo,
		logger:        logger,
	}
}

// GetFormat returns the inventory's identifier format with a rendered
// preview. Inventories without a saved format report the default element
// list with IsDefault set.
func (s *IDFormatService) GetFormat(ctx context.Context, actor Actor, inventoryID uuid.UUID) (*IDFormatInfo, error) {
	inv, err := s.loadInventory(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	if !s.canRead(inv, actor) {
		return nil, shared.ErrForbidden
	}

	format, err := s.formatRepo.FindByInventory(ctx, inventoryID)
	if err != nil {
		if de, ok := err.(*shared.DomainError); ok && de.Code == "NOT_FOUND" {
			elements := customid.DefaultElements()
			return &IDFormatInfo{
				InventoryID: inventoryID,
				Elements:    elements,
				Preview:     customid.Preview(elements),
				IsDefault:   true,
			}, nil
		}
		s.logger.Error("Failed to load identifier format", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load identifier format")
	}

	elements := []customid.Element(format.Elements)
	return &IDFormatInfo{
		InventoryID: inventoryID,
		Elements:    elements,
		Preview:     customid.Preview(elements),
		IsDefault:   false,
	}, nil
}

// UpdateFormat replaces the inventory's element list wholesale. Identifiers
// already assigned to items keep their stored values; the new format only
// governs future generation.
func (s *IDFormatService) UpdateFormat(ctx context.Context, input UpdateIDFormatInput) (*IDFormatInfo, error) {
	inv, err := s.loadInventory(ctx, input.InventoryID)
	if err != nil {
		return nil, err
	}
	if !s.canManage(inv, input.Actor) {
		return nil, shared.ErrForbidden
	}

	format, err := s.formatRepo.FindByInventory(ctx, input.InventoryID)
	if err != nil {
		if de, ok := err.(*shared.DomainError); ok && de.Code == "NOT_FOUND" {
			format, err = inventory.NewIDFormat(input.InventoryID, input.Elements)
			if err != nil {
				return nil, err
			}
		} else {
			s.logger.Error("Failed to load identifier format", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load identifier format")
		}
	} else {
		if err := format.Replace(input.Elements); err != nil {
			return nil, err
		}
	}

	if err := s.formatRepo.Save(ctx, format); err != nil {
		s.logger.Error("Failed to save identifier format", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save identifier format")
	}

	s.logger.Info("Identifier format updated",
		zap.String("inventory_id", input.InventoryID.String()),
		zap.Int("element_count", len(format.Elements)))

	elements := []customid.Element(format.Elements)
	return &IDFormatInfo{
		InventoryID: input.InventoryID,
		Elements:    elements,
		Preview:     customid.Preview(elements),
		IsDefault:   false,
	}, nil
}

// PreviewFormat renders a candidate element list without persisting it.
// The preview uses a fixed illustrative sequence number.
func (s *IDFormatService) PreviewFormat(ctx context.Context, input PreviewIDFormatInput) (string, error) {
	if err := customid.ValidateElements(input.Elements); err != nil {
		return "", err
	}
	return customid.Preview(input.Elements), nil
}

func (s *IDFormatService) loadInventory(ctx context.Context, id uuid.UUID) (*inventory.Inventory, error) {
	inv, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Inventory not found")
	}
	return inv, nil
}

func (s *IDFormatService) canRead(inv *inventory.Inventory, actor Actor) bool {
	if actor.IsAdmin || inv.IsPublic {
		return true
	}
	return inv.CanWrite(actor.UserID)
}

func (s *IDFormatService) canManage(inv *inventory.Inventory, actor Actor) bool {
	return actor.IsAdmin || inv.IsOwnedBy(actor.UserID)
}
