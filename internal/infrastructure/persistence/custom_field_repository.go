package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inventoria/backend/internal/domain/inventory"
	"github.com/inventoria/backend/internal/domain/schema"
	"github.com/inventoria/backend/internal/domain/shared"
)

// GormCustomFieldRepository implements schema.CustomFieldRepository using GORM
type GormCustomFieldRepository struct {
	db *gorm.DB
}

// NewGormCustomFieldRepository creates a new GormCustomFieldRepository
func NewGormCustomFieldRepository(db *gorm.DB) *GormCustomFieldRepository {
	return &GormCustomFieldRepository{db: db}
}

// FindByID finds a custom field by ID
func (r *GormCustomFieldRepository) FindByID(ctx context.Context, id uuid.UUID) (*schema.CustomField, error) {
	var field schema.CustomField
	if err := r.db.WithContext(ctx).First(&field, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &field, nil
}

// FindByInventory returns all fields of an inventory in display order
func (r *GormCustomFieldRepository) FindByInventory(ctx context.Context, inventoryID uuid.UUID) ([]schema.CustomField, error) {
	var fields []schema.CustomField
	if err := r.db.WithContext(ctx).
		Where("inventory_id = ?", inventoryID).
		Order("sort_order ASC, created_at ASC").
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

// CountByType counts the fields of one type within an inventory
func (r *GormCustomFieldRepository) CountByType(ctx context.Context, inventoryID uuid.UUID, fieldType schema.FieldType) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&schema.CustomField{}).
		Where("inventory_id = ? AND field_type = ?", inventoryID, fieldType).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsTitle checks whether a field title is already taken within an inventory
func (r *GormCustomFieldRepository) ExistsTitle(ctx context.Context, inventoryID uuid.UUID, title string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&schema.CustomField{}).
		Where("inventory_id = ? AND title = ?", inventoryID, title).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a custom field
func (r *GormCustomFieldRepository) Save(ctx context.Context, field *schema.CustomField) error {
	return r.db.WithContext(ctx).Save(field).Error
}

// SaveAll persists sort order changes for a set of fields atomically
func (r *GormCustomFieldRepository) SaveAll(ctx context.Context, fields []schema.CustomField) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range fields {
			if err := tx.Save(&fields[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a custom field and strips its title key from the stored
// payload of every item in the inventory. Both run in one transaction, so
// a failed expunge rolls the field back too.
func (r *GormCustomFieldRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var field schema.CustomField
		if err := tx.First(&field, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(&schema.CustomField{}, "id = ?", id).Error; err != nil {
			return err
		}
		return expungeFieldKey(tx, field.InventoryID, field.Title)
	})
}

// expungeFieldKey removes one key from the field payload of every item in
// the inventory. Postgres strips it with the jsonb delete operator; the
// sqlite dialect the tests run on goes through json_remove.
func expungeFieldKey(tx *gorm.DB, inventoryID uuid.UUID, key string) error {
	items := tx.Model(&inventory.Item{}).Where("inventory_id = ?", inventoryID)
	if tx.Dialector.Name() == "sqlite" {
		return items.Update("field_values", gorm.Expr("json_remove(field_values, ?)", `$."`+key+`"`)).Error
	}
	return items.Update("field_values", gorm.Expr("field_values - ?", key)).Error
}

// Ensure GormCustomFieldRepository implements CustomFieldRepository
var _ schema.CustomFieldRepository = (*GormCustomFieldRepository)(nil)
