package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/inventoria/backend/internal/domain/inventory"
	"github.com/inventoria/backend/internal/domain/schema"
	"github.com/inventoria/backend/internal/domain/shared"
)

// MockInventoryRepository is a mock implementation of inventory.InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Inventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Inventory, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) FindVisibleTo(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]inventory.Inventory, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]inventory.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]inventory.Inventory, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]inventory.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) Save(ctx context.Context, inv *inventory.Inventory) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInventoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockItemRepository is a mock implementation of inventory.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}

func (m *MockItemRepository) FindByInventory(ctx context.Context, inventoryID uuid.UUID, filter shared.Filter) ([]inventory.Item, error) {
	args := m.Called(ctx, inventoryID, filter)
	return args.Get(0).([]inventory.Item), args.Error(1)
}

func (m *MockItemRepository) FindByCustomID(ctx context.Context, inventoryID uuid.UUID, customID string) (*inventory.Item, error) {
	args := m.Called(ctx, inventoryID, customID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}

func (m *MockItemRepository) CountByInventory(ctx context.Context, inventoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, inventoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) ExistsCustomID(ctx context.Context, inventoryID uuid.UUID, customID string) (bool, error) {
	args := m.Called(ctx, inventoryID, customID)
	return args.Bool(0), args.Error(1)
}

func (m *MockItemRepository) Save(ctx context.Context, item *inventory.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepository) NextSequence(ctx context.Context, inventoryID uuid.UUID) (int, error) {
	args := m.Called(ctx, inventoryID)
	return args.Int(0), args.Error(1)
}

// MockIDFormatRepository is a mock implementation of inventory.IDFormatRepository
type MockIDFormatRepository struct {
	mock.Mock
}

func (m *MockIDFormatRepository) FindByInventory(ctx context.Context, inventoryID uuid.UUID) (*inventory.IDFormat, error) {
	args := m.Called(ctx, inventoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.IDFormat), args.Error(1)
}

func (m *MockIDFormatRepository) Save(ctx context.Context, format *inventory.IDFormat) error {
	args := m.Called(ctx, format)
	return args.Error(0)
}

func (m *MockIDFormatRepository) DeleteByInventory(ctx context.Context, inventoryID uuid.UUID) error {
	args := m.Called(ctx, inventoryID)
	return args.Error(0)
}

// MockCustomFieldRepository is a mock implementation of schema.CustomFieldRepository
type MockCustomFieldRepository struct {
	mock.Mock
}

func (m *MockCustomFieldRepository) FindByID(ctx context.Context, id uuid.UUID) (*schema.CustomField, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schema.CustomField), args.Error(1)
}

func (m *MockCustomFieldRepository) FindByInventory(ctx context.Context, inventoryID uuid.UUID) ([]schema.CustomField, error) {
	args := m.Called(ctx, inventoryID)
	return args.Get(0).([]schema.CustomField), args.Error(1)
}

func (m *MockCustomFieldRepository) CountByType(ctx context.Context, inventoryID uuid.UUID, fieldType schema.FieldType) (int64, error) {
	args := m.Called(ctx, inventoryID, fieldType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomFieldRepository) ExistsTitle(ctx context.Context, inventoryID uuid.UUID, title string) (bool, error) {
	args := m.Called(ctx, inventoryID, title)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomFieldRepository) Save(ctx context.Context, field *schema.CustomField) error {
	args := m.Called(ctx, field)
	return args.Error(0)
}

func (m *MockCustomFieldRepository) SaveAll(ctx context.Context, fields []schema.CustomField) error {
	args := m.Called(ctx, fields)
	return args.Error(0)
}

func (m *MockCustomFieldRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Test fixtures shared by the service tests

func newOwnedInventory(ownerID uuid.UUID, isPublic bool) *inventory.Inventory {
	inv, _ := inventory.NewInventory(ownerID, "Office Laptops", "Laptops handed out to staff", inventory.CategoryEquipment, isPublic)
	return inv
}
