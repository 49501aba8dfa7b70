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

// GormInventoryRepository implements inventory.InventoryRepository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// FindByID finds an inventory by ID with its access grants preloaded
func (r *GormInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Inventory, error) {
	var inv inventory.Inventory
	if err := r.db.WithContext(ctx).
		Preload("AccessGrants").
		First(&inv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// FindAll returns inventories matching the filter
func (r *GormInventoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Inventory, error) {
	var inventories []inventory.Inventory
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.Inventory{}), filter)
	query = r.applyOrder(query, filter)
	if err := query.Find(&inventories).Error; err != nil {
		return nil, err
	}
	return inventories, nil
}

// FindVisibleTo returns public inventories plus those owned by or shared
// with the user
func (r *GormInventoryRepository) FindVisibleTo(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]inventory.Inventory, error) {
	var inventories []inventory.Inventory
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.Inventory{}), filter)
	query = query.Where(
		"is_public = ? OR created_by = ? OR id IN (?)",
		true, userID,
		r.db.Model(&inventory.InventoryAccess{}).Select("inventory_id").Where("user_id = ?", userID),
	)
	query = r.applyOrder(query, filter)
	if err := query.Find(&inventories).Error; err != nil {
		return nil, err
	}
	return inventories, nil
}

// FindByOwner returns inventories created by the user
func (r *GormInventoryRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]inventory.Inventory, error) {
	var inventories []inventory.Inventory
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.Inventory{}), filter)
	query = query.Where("created_by = ?", ownerID)
	query = r.applyOrder(query, filter)
	if err := query.Find(&inventories).Error; err != nil {
		return nil, err
	}
	return inventories, nil
}

// Save creates or updates an inventory together with its access grants.
// Grants removed from the aggregate are deleted in the same transaction.
func (r *GormInventoryRepository) Save(ctx context.Context, inv *inventory.Inventory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("AccessGrants").Save(inv).Error; err != nil {
			return err
		}

		keep := make([]uuid.UUID, 0, len(inv.AccessGrants))
		for i := range inv.AccessGrants {
			grant := &inv.AccessGrants[i]
			grant.InventoryID = inv.ID
			if err := tx.Save(grant).Error; err != nil {
				return err
			}
			keep = append(keep, grant.ID)
		}

		query := tx.Where("inventory_id = ?", inv.ID)
		if len(keep) > 0 {
			query = query.Where("id NOT IN ?", keep)
		}
		return query.Delete(&inventory.InventoryAccess{}).Error
	})
}

// Delete deletes an inventory and everything belonging to it
func (r *GormInventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("inventory_id = ?", id).Delete(&inventory.Item{}).Error; err != nil {
			return err
		}
		if err := tx.Where("inventory_id = ?", id).Delete(&inventory.InventoryAccess{}).Error; err != nil {
			return err
		}
		if err := tx.Where("inventory_id = ?", id).Delete(&inventory.IDFormat{}).Error; err != nil {
			return err
		}
		if err := tx.Where("inventory_id = ?", id).Delete(&schema.CustomField{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&inventory.Inventory{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts inventories matching the filter
func (r *GormInventoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.Inventory{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormInventoryRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if category, ok := filter.Filters["category"]; ok {
		query = query.Where("category = ?", category)
	}
	if isPublic, ok := filter.Filters["is_public"]; ok {
		query = query.Where("is_public = ?", isPublic)
	}
	return query
}

func (r *GormInventoryRepository) applyOrder(query *gorm.DB, filter shared.Filter) *gorm.DB {
	orderBy := ValidateSortField(filter.OrderBy, InventorySortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// Ensure GormInventoryRepository implements InventoryRepository
var _ inventory.InventoryRepository = (*GormInventoryRepository)(nil)
