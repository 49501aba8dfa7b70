package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inventoria/backend/internal/domain/inventory"
	"github.com/inventoria/backend/internal/domain/shared"
)

// GormIDFormatRepository implements inventory.IDFormatRepository using GORM
type GormIDFormatRepository struct {
	db *gorm.DB
}

// NewGormIDFormatRepository creates a new GormIDFormatRepository
func NewGormIDFormatRepository(db *gorm.DB) *GormIDFormatRepository {
	return &GormIDFormatRepository{db: db}
}

// FindByInventory finds the format row of an inventory. Inventories that
// still use the default format have no row; shared.ErrNotFound signals that.
func (r *GormIDFormatRepository) FindByInventory(ctx context.Context, inventoryID uuid.UUID) (*inventory.IDFormat, error) {
	var format inventory.IDFormat
	if err := r.db.WithContext(ctx).
		Where("inventory_id = ?", inventoryID).
		First(&format).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &format, nil
}

// Save creates or updates a format row
func (r *GormIDFormatRepository) Save(ctx context.Context, format *inventory.IDFormat) error {
	return r.db.WithContext(ctx).Save(format).Error
}

// DeleteByInventory removes the format row of an inventory
func (r *GormIDFormatRepository) DeleteByInventory(ctx context.Context, inventoryID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("inventory_id = ?", inventoryID).
		Delete(&inventory.IDFormat{}).Error
}

// Ensure GormIDFormatRepository implements IDFormatRepository
var _ inventory.IDFormatRepository = (*GormIDFormatRepository)(nil)
