package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/inventoria/backend/internal/domain/identity"
	"github.com/inventoria/backend/internal/infrastructure/auth"
)

func createUserService(userRepo *MockUserRepository, blacklist auth.TokenBlacklist) *UserService {
	return NewUserService(userRepo, blacklist, zap.NewNop())
}

func TestUserService_BlockUsers(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	blacklist := auth.NewInMemoryTokenBlacklist()

	target := createTestUser()
	userRepo.On("FindByID", ctx, target.ID).Return(target, nil)
	userRepo.On("Save", ctx, target).Return(nil)

	svc := createUserService(userRepo, blacklist)

	result, err := svc.BlockUsers(ctx, BulkUserInput{
		ActorID: uuid.New(),
		UserIDs: []uuid.UUID{target.ID},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Affected)
	assert.Equal(t, 0, result.Skipped)
	assert.True(t, target.IsBlocked())

	// Sessions issued before the block must be rejected
	invalidated, err := blacklist.IsUserTokenInvalidated(ctx, target.ID.String(), target.CreatedAt)
	require.NoError(t, err)
	assert.True(t, invalidated)
}

func TestUserService_BlockUsers_AlreadyBlockedSkipped(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	target := createTestUser()
	require.NoError(t, target.Block())
	userRepo.On("FindByID", ctx, target.ID).Return(target, nil)

	svc := createUserService(userRepo, auth.NewInMemoryTokenBlacklist())

	result, err := svc.BlockUsers(ctx, BulkUserInput{
		ActorID: uuid.New(),
		UserIDs: []uuid.UUID{target.ID},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Affected)
	assert.Equal(t, 1, result.Skipped)
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUserService_BlockUsers_MixedSelection(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	good := createTestUser()
	missingID := uuid.New()
	userRepo.On("FindByID", ctx, good.ID).Return(good, nil)
	userRepo.On("FindByID", ctx, missingID).Return(nil, errors.New("not found"))
	userRepo.On("Save", ctx, good).Return(nil)

	svc := createUserService(userRepo, auth.NewInMemoryTokenBlacklist())

	result, err := svc.BlockUsers(ctx, BulkUserInput{
		ActorID: uuid.New(),
		UserIDs: []uuid.UUID{good.ID, missingID},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Affected)
	assert.Equal(t, 1, result.Skipped)
}

func TestUserService_UnblockUsers(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	target := createTestUser()
	require.NoError(t, target.Block())
	userRepo.On("FindByID", ctx, target.ID).Return(target, nil)
	userRepo.On("Save", ctx, target).Return(nil)

	svc := createUserService(userRepo, auth.NewInMemoryTokenBlacklist())

	result, err := svc.UnblockUsers(ctx, BulkUserInput{
		ActorID: uuid.New(),
		UserIDs: []uuid.UUID{target.ID},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Affected)
	assert.False(t, target.IsBlocked())
}

func TestUserService_PromoteAndDemote(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	target := createTestUser()
	userRepo.On("FindByID", ctx, target.ID).Return(target, nil)
	userRepo.On("Save", ctx, target).Return(nil)

	svc := createUserService(userRepo, auth.NewInMemoryTokenBlacklist())
	input := BulkUserInput{ActorID: uuid.New(), UserIDs: []uuid.UUID{target.ID}}

	result, err := svc.PromoteUsers(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Affected)
	assert.Equal(t, identity.RoleAdmin, target.Role)

	result, err = svc.DemoteUsers(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Affected)
	assert.Equal(t, identity.RoleUser, target.Role)
}

func TestUserService_DemoteSelf(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	actor := createTestUser()
	require.NoError(t, actor.Promote())
	userRepo.On("FindByID", ctx, actor.ID).Return(actor, nil)
	userRepo.On("Save", ctx, actor).Return(nil)

	svc := createUserService(userRepo, auth.NewInMemoryTokenBlacklist())

	result, err := svc.DemoteUsers(ctx, BulkUserInput{
		ActorID: actor.ID,
		UserIDs: []uuid.UUID{actor.ID},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Affected)
	assert.Equal(t, identity.RoleUser, actor.Role)
}

func TestUserService_DeleteUsers(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	id1 := uuid.New()
	id2 := uuid.New()
	userRepo.On("Delete", ctx, id1).Return(nil)
	userRepo.On("Delete", ctx, id2).Return(errors.New("constraint violation"))

	svc := createUserService(userRepo, auth.NewInMemoryTokenBlacklist())

	result, err := svc.DeleteUsers(ctx, BulkUserInput{
		ActorID: uuid.New(),
		UserIDs: []uuid.UUID{id1, id2},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Affected)
	assert.Equal(t, 1, result.Skipped)
}
