package inventory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inventoria/backend/internal/domain/inventory"
	"github.com/inventoria/backend/internal/domain/schema"
	"github.com/inventoria/backend/internal/domain/shared"
)

// CustomFieldService manages an inventory's custom field configuration
type CustomFieldService struct {
	inventoryRepo inventory.InventoryRepository
	fieldRepo     schema.CustomFieldRepository
	logger        *zap.Logger
}

// NewCustomFieldService creates a new custom field service
func NewCustomFieldService(
	inventoryRepo inventory.InventoryRepository,
	fieldRepo schema.CustomFieldRepository,
	logger *zap.Logger,
) *CustomFieldService {
	return &CustomFieldService{
		inventoryRepo: inventoryRepo,
		fieldRepo:     fieldRepo,
		logger:        logger,
	}
}

// ListFields returns an inventory's fields in display order
func (s *CustomFieldService) ListFields(ctx context.Context, actor Actor, inventoryID uuid.UUID) ([]FieldInfo, error) {
	inv, err := s.loadInventory(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	if !s.canRead(inv, actor) {
		return nil, shared.ErrForbidden
	}

	fields, err := s.fieldRepo.FindByInventory(ctx, inventoryID)
	if err != nil {
		s.logger.Error("Failed to list custom fields", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list fields")
	}

	infos := make([]FieldInfo, 0, len(fields))
	for i := range fields {
		infos = append(infos, NewFieldInfo(&fields[i]))
	}
	return infos, nil
}

// CreateField adds a field after checking the per-type quota and title
// uniqueness. Both checks run before any write.
func (s *CustomFieldService) CreateField(ctx context.Context, input CreateFieldInput) (*FieldInfo, error) {
	inv, err := s.loadInventory(ctx, input.InventoryID)
	if err != nil {
		return nil, err
	}
	if !s.canManage(inv, input.Actor) {
		return nil, shared.ErrForbidden
	}

	count, err := s.fieldRepo.CountByType(ctx, input.InventoryID, input.FieldType)
	if err != nil {
		s.logger.Error("Failed to count fields by type", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check field quota")
	}
	if err := schema.CheckTypeQuota(input.FieldType, int(count)); err != nil {
		return nil, err
	}

	taken, err := s.fieldRepo.ExistsTitle(ctx, input.InventoryID, input.Title)
	if err != nil {
		s.logger.Error("Failed to check field title", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check field title")
	}
	if taken {
		return nil, shared.NewDomainError("DUPLICATE_TITLE", "A field with this title already exists in the inventory")
	}

	// New fields go to the end of the display order
	existing, err := s.fieldRepo.FindByInventory(ctx, input.InventoryID)
	if err != nil {
		s.logger.Error("Failed to load existing fields", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load existing fields")
	}

	field, err := schema.NewCustomField(input.InventoryID, input.Title, input.Description, input.FieldType, input.ShowInTable, len(existing))
	if err != nil {
		return nil, err
	}

	if err := s.fieldRepo.Save(ctx, field); err != nil {
		s.logger.Error("Failed to save custom field", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create field")
	}

	s.logger.Info("Custom field created",
		zap.String("field_id", field.ID.String()),
		zap.String("inventory_id", input.InventoryID.String()),
		zap.String("field_type", string(field.FieldType)))

	info := NewFieldInfo(field)
	return &info, nil
}

// UpdateField changes a field's presentational attributes. Renames must
// keep the title unique within the inventory; the field type never changes.
func (s *CustomFieldService) UpdateField(ctx context.Context, input UpdateFieldInput) (*FieldInfo, error) {
	field, inv, err := s.loadFieldWithInventory(ctx, input.FieldID)
	if err != nil {
		return nil, err
	}
	if !s.canManage(inv, input.Actor) {
		return nil, shared.ErrForbidden
	}

	if input.Title != field.Title {
		taken, err := s.fieldRepo.ExistsTitle(ctx, field.InventoryID, input.Title)
		if err != nil {
			s.logger.Error("Failed to check field title", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check field title")
		}
		if taken {
			return nil, shared.NewDomainError("DUPLICATE_TITLE", "A field with this title already exists in the inventory")
		}
	}

	if err := field.Update(input.Title, input.Description, input.ShowInTable); err != nil {
		return nil, err
	}

	if err := s.fieldRepo.Save(ctx, field); err != nil {
		s.logger.Error("Failed to save field update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update field")
	}

	info := NewFieldInfo(field)
	return &info, nil
}

// DeleteField removes a field and expunges its key from every stored item
// payload of the inventory. The expunge runs in the same transaction as
// the delete inside the repository.
func (s *CustomFieldService) DeleteField(ctx context.Context, actor Actor, fieldID uuid.UUID) error {
	field, inv, err := s.loadFieldWithInventory(ctx, fieldID)
	if err != nil {
		return err
	}
	if !s.canManage(inv, actor) {
		return shared.ErrForbidden
	}

	if err := s.fieldRepo.Delete(ctx, field.ID); err != nil {
		s.logger.Error("Failed to delete custom field",
			zap.String("field_title", field.Title), zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete field")
	}

	s.logger.Info("Custom field deleted",
		zap.String("field_id", fieldID.String()),
		zap.String("inventory_id", field.InventoryID.String()))

	return nil
}

// ReorderFields applies a new display order. The input must list every
// field of the inventory exactly once.
func (s *CustomFieldService) ReorderFields(ctx context.Context, input ReorderFieldsInput) error {
	inv, err := s.loadInventory(ctx, input.InventoryID)
	if err != nil {
		return err
	}
	if !s.canManage(inv, input.Actor) {
		return shared.ErrForbidden
	}

	fields, err := s.fieldRepo.FindByInventory(ctx, input.InventoryID)
	if err != nil {
		s.logger.Error("Failed to load fields for reorder", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to load fields")
	}

	if len(input.FieldIDs) != len(fields) {
		return shared.NewDomainError("INVALID_ORDER", "Order must include every field of the inventory exactly once")
	}

	byID := make(map[uuid.UUID]*schema.CustomField, len(fields))
	for i := range fields {
		byID[fields[i].ID] = &fields[i]
	}

	ordered := make([]schema.CustomField, 0, len(fields))
	for position, id := range input.FieldIDs {
		field, ok := byID[id]
		if ok {
			field.SetSortOrder(position)
			ordered = append(ordered, *field)
			delete(byID, id)
			continue
		}
		return shared.NewDomainError("INVALID_ORDER", "Order references a field that does not belong to the inventory")
	}

	if err := s.fieldRepo.SaveAll(ctx, ordered); err != nil {
		s.logger.Error("Failed to save field order", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to save field order")
	}

	return nil
}

func (s *CustomFieldService) loadInventory(ctx context.Context, id uuid.UUID) (*inventory.Inventory, error) {
	inv, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Inventory not found")
	}
	return inv, nil
}

func (s *CustomFieldService) loadFieldWithInventory(ctx context.Context, fieldID uuid.UUID) (*schema.CustomField, *inventory.Inventory, error) {
	field, err := s.fieldRepo.FindByID(ctx, fieldID)
	if err != nil {
		return nil, nil, shared.NewDomainError("NOT_FOUND", "Field not found")
	}

	inv, err := s.inventoryRepo.FindByID(ctx, field.InventoryID)
	if err != nil {
		return nil, nil, shared.NewDomainError("NOT_FOUND", "Inventory not found")
	}

	return field, inv, nil
}

func (s *CustomFieldService) canRead(inv *inventory.Inventory, actor Actor) bool {
	if actor.IsAdmin || inv.IsPublic {
		return true
	}
	return inv.CanWrite(actor.UserID)
}

func (s *CustomFieldService) canManage(inv *inventory.Inventory, actor Actor) bool {
	return actor.IsAdmin || inv.IsOwnedBy(actor.UserID)
}
