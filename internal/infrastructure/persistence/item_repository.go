package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inventoria/backend/internal/domain/customid"
	"github.com/inventoria/backend/internal/domain/inventory"
	"github.com/inventoria/backend/internal/domain/shared"
)

// GormItemRepository implements inventory.ItemRepository using GORM.
//
// The unique index on (inventory_id, custom_id) is the final arbiter of
// identifier uniqueness; a violation at insert or update time is translated
// to shared.ErrDuplicateCustomID so callers can treat it as retryable.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID finds an item by ID
func (r *GormItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	var item inventory.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByInventory returns all items of an inventory
func (r *GormItemRepository) FindByInventory(ctx context.Context, inventoryID uuid.UUID, filter shared.Filter) ([]inventory.Item, error) {
	var items []inventory.Item

	query := r.db.WithContext(ctx).
		Model(&inventory.Item{}).
		Where("inventory_id = ?", inventoryID)
	if filter.Search != "" {
		query = query.Where("custom_id LIKE ?", "%"+filter.Search+"%")
	}

	orderBy := ValidateSortField(filter.OrderBy, ItemSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(orderBy + " " + orderDir)

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByCustomID finds an item by its identifier within an inventory
func (r *GormItemRepository) FindByCustomID(ctx context.Context, inventoryID uuid.UUID, customID string) (*inventory.Item, error) {
	var item inventory.Item
	if err := r.db.WithContext(ctx).
		Where("inventory_id = ? AND custom_id = ?", inventoryID, customID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// CountByInventory counts the items of an inventory
func (r *GormItemRepository) CountByInventory(ctx context.Context, inventoryID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.Item{}).
		Where("inventory_id = ?", inventoryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// NextSequence returns the ordinal for the next generated identifier,
// derived from the live item count. Deleted items leave gaps that are
// reused; see customid.SequenceProvider for the concurrency caveat.
func (r *GormItemRepository) NextSequence(ctx context.Context, inventoryID uuid.UUID) (int, error) {
	count, err := r.CountByInventory(ctx, inventoryID)
	if err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}

// ExistsCustomID checks whether an identifier is already taken within an inventory
func (r *GormItemRepository) ExistsCustomID(ctx context.Context, inventoryID uuid.UUID, customID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.Item{}).
		Where("inventory_id = ? AND custom_id = ?", inventoryID, customID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an item
func (r *GormItemRepository) Save(ctx context.Context, item *inventory.Item) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrDuplicateCustomID
		}
		return err
	}
	return nil
}

// Delete deletes an item by ID
func (r *GormItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.Item{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormItemRepository implements ItemRepository and serves as the
// sequence source for generated identifiers
var (
	_ inventory.ItemRepository  = (*GormItemRepository)(nil)
	_ customid.SequenceProvider = (*GormItemRepository)(nil)
)
