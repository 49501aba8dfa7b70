package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/inventoria/backend/internal/domain/customid"
	"github.com/inventoria/backend/internal/domain/inventory"
	"github.com/inventoria/backend/internal/domain/shared"
)

func createFormatService(invRepo *MockInventoryRepository, formatRepo *MockIDFormatRepository) *IDFormatService {
	return NewIDFormatService(invRepo, formatRepo, zap.NewNop())
}

func TestIDFormatService_GetFormat_DefaultWhenUnsaved(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	invRepo := new(MockInventoryRepository)
	formatRepo := new(MockIDFormatRepository)

	inv := newOwnedInventory(ownerID, false)
	invRepo.On("FindByID", ctx, inv.ID).Return(inv, nil)
	formatRepo.On("FindByInventory", ctx, inv.ID).Return(nil, shared.ErrNotFound)

	svc := createFormatService(invRepo, formatRepo)

	info, err := svc.GetFormat(ctx, Actor{UserID: ownerID}, inv.ID)
	require.NoError(t, err)
	assert.True(t, info.IsDefault)
	assert.Equal(t, customid.DefaultElements(), info.Elements)
	assert.Equal(t, "ITEM-0042", info.Preview)
}

func TestIDFormatService_GetFormat_Saved(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	invRepo := new(MockInventoryRepository)
	formatRepo := new(MockIDFormatRepository)

	inv := newOwnedInventory(ownerID, false)
	format, err := inventory.NewIDFormat(inv.ID, []customid.Element{
		{Type: customid.ElementFixedText, Value: "LAP-"},
		{Type: customid.ElementSequence},
	})
	require.NoError(t, err)

	invRepo.On("FindByID", ctx, inv.ID).Return(inv, nil)
	formatRepo.On("FindByInventory", ctx, inv.ID).Return(format, nil)

	svc := createFormatService(invRepo, formatRepo)

	info, err := svc.GetFormat(ctx, Actor{UserID: ownerID}, inv.ID)
	require.NoError(t, err)
	assert.False(t, info.IsDefault)
	assert.Equal(t, "LAP-42", info.Preview)
}

func TestIDFormatService_UpdateFormat_CreatesRow(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	invRepo := new(MockInventoryRepository)
	formatRepo := new(MockIDFormatRepository)

	inv := newOwnedInventory(ownerID, false)
	invRepo.On("FindByID", ctx, inv.ID).Return(inv, nil)
	formatRepo.On("FindByInventory", ctx, inv.ID).Return(nil, shared.ErrNotFound)
	formatRepo.On("Save", ctx, mock.AnythingOfType("*inventory.IDFormat")).Return(nil)

	svc := createFormatService(invRepo, formatRepo)

	info, err := svc.UpdateFormat(ctx, UpdateIDFormatInput{
		Actor:       Actor{UserID: ownerID},
		InventoryID: inv.ID,
		Elements: []customid.Element{
			{Type: customid.ElementFixedText, Value: "EQ-"},
			{Type: customid.ElementSequence, Format: &customid.ElementFormat{LeadingZeros: true, Width: 6}},
		},
	})

	require.NoError(t, err)
	assert.False(t, info.IsDefault)
	assert.Equal(t, "EQ-000042", info.Preview)
	formatRepo.AssertExpectations(t)
}

func TestIDFormatService_UpdateFormat_ReplacesExisting(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	invRepo := new(MockInventoryRepository)
	formatRepo := new(MockIDFormatRepository)

	inv := newOwnedInventory(ownerID, false)
	format, err := inventory.NewIDFormat(inv.ID, []customid.Element{
		{Type: customid.ElementFixedText, Value: "OLD-"},
		{Type: customid.ElementSequence},
	})
	require.NoError(t, err)

	invRepo.On("FindByID", ctx, inv.ID).Return(inv, nil)
	formatRepo.On("FindByInventory", ctx, inv.ID).Return(format, nil)
	formatRepo.On("Save", ctx, format).Return(nil)

	svc := createFormatService(invRepo, formatRepo)

	info, err := svc.UpdateFormat(ctx, UpdateIDFormatInput{
		Actor:       Actor{UserID: ownerID},
		InventoryID: inv.ID,
		Elements: []customid.Element{
			{Type: customid.ElementFixedText, Value: "NEW-"},
			{Type: customid.ElementSequence},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "NEW-42", info.Preview)
	assert.Equal(t, "NEW-", format.Elements[0].Value)
}

func TestIDFormatService_UpdateFormat_InvalidElements(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	invRepo := new(MockInventoryRepository)
	formatRepo := new(MockIDFormatRepository)

	inv := newOwnedInventory(ownerID, false)
	invRepo.On("FindByID", ctx, inv.ID).Return(inv, nil)
	formatRepo.On("FindByInventory", ctx, inv.ID).Return(nil, shared.ErrNotFound)

	svc := createFormatService(invRepo, formatRepo)

	_, err := svc.UpdateFormat(ctx, UpdateIDFormatInput{
		Actor:       Actor{UserID: ownerID},
		InventoryID: inv.ID,
		Elements:    []customid.Element{{Type: "barcode"}},
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_FORMAT", domainErr.Code)
	formatRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestIDFormatService_UpdateFormat_NonOwnerForbidden(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	invRepo := new(MockInventoryRepository)
	formatRepo := new(MockIDFormatRepository)

	inv := newOwnedInventory(ownerID, true)
	invRepo.On("FindByID", ctx, inv.ID).Return(inv, nil)

	svc := createFormatService(invRepo, formatRepo)

	// Even on a public inventory, the format belongs to the owner
	_, err := svc.UpdateFormat(ctx, UpdateIDFormatInput{
		Actor:       Actor{UserID: uuid.New()},
		InventoryID: inv.ID,
		Elements:    customid.DefaultElements(),
	})

	require.ErrorIs(t, err, shared.ErrForbidden)
}

func TestIDFormatService_PreviewFormat(t *testing.T) {
	ctx := context.Background()
	svc := createFormatService(new(MockInventoryRepository), new(MockIDFormatRepository))

	preview, err := svc.PreviewFormat(ctx, PreviewIDFormatInput{
		Elements: []customid.Element{
			{Type: customid.ElementFixedText, Value: "BOX-"},
			{Type: customid.ElementSequence, Format: &customid.ElementFormat{LeadingZeros: true}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "BOX-0042", preview)
}

func TestIDFormatService_PreviewFormat_Empty(t *testing.T) {
	ctx := context.Background()
	svc := createFormatService(new(MockInventoryRepository), new(MockIDFormatRepository))

	_, err := svc.PreviewFormat(ctx, PreviewIDFormatInput{})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_FORMAT", domainErr.Code)
}
