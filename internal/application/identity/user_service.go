package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inventoria/backend/internal/domain/identity"
	"github.com/inventoria/backend/internal/domain/shared"
	"github.com/inventoria/backend/internal/infrastructure/auth"
)

// UserService handles admin-side user management. All mutating operations
// accept a list of target IDs so the management view can act on a selection
// in one request.
type UserService struct {
	userRepo  identity.UserRepository
	blacklist auth.TokenBlacklist
	logger    *zap.Logger
}

// NewUserService creates a new user management service
func NewUserService(userRepo identity.UserRepository, blacklist auth.TokenBlacklist, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo:  userRepo,
		blacklist: blacklist,
		logger:    logger,
	}
}

// ListUsers returns all users matching the filter
func (s *UserService) ListUsers(ctx context.Context, filter shared.Filter) ([]UserInfo, error) {
	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list users")
	}

	infos := make([]UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, NewUserInfo(&users[i]))
	}
	return infos, nil
}

// GetUser returns one user
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}
	info := NewUserInfo(user)
	return &info, nil
}

// BlockUsers blocks the selected users and invalidates their sessions.
// Targets that are already blocked are skipped, not errors.
func (s *UserService) BlockUsers(ctx context.Context, input BulkUserInput) (*BulkUserResult, error) {
	return s.applyToUsers(ctx, input, func(user *identity.User) error {
		if err := user.Block(); err != nil {
			return err
		}
		// Reject tokens issued before the block
		if err := s.blacklist.AddUserTokensToBlacklist(ctx, user.ID.String(), 24*time.Hour); err != nil {
			s.logger.Error("Failed to invalidate tokens for blocked user",
				zap.String("user_id", user.ID.String()), zap.Error(err))
		}
		return nil
	})
}

// UnblockUsers restores the selected users
func (s *UserService) UnblockUsers(ctx context.Context, input BulkUserInput) (*BulkUserResult, error) {
	return s.applyToUsers(ctx, input, func(user *identity.User) error {
		return user.Unblock()
	})
}

// PromoteUsers grants the admin role to the selected users
func (s *UserService) PromoteUsers(ctx context.Context, input BulkUserInput) (*BulkUserResult, error) {
	return s.applyToUsers(ctx, input, func(user *identity.User) error {
		return user.Promote()
	})
}

// DemoteUsers removes the admin role from the selected users. The acting
// admin may demote themselves; no last-admin check is applied.
func (s *UserService) DemoteUsers(ctx context.Context, input BulkUserInput) (*BulkUserResult, error) {
	return s.applyToUsers(ctx, input, func(user *identity.User) error {
		return user.Demote()
	})
}

// DeleteUsers removes the selected users entirely
func (s *UserService) DeleteUsers(ctx context.Context, input BulkUserInput) (*BulkUserResult, error) {
	result := &BulkUserResult{}
	for _, id := range input.UserIDs {
		if err := s.userRepo.Delete(ctx, id); err != nil {
			s.logger.Warn("Failed to delete user",
				zap.String("user_id", id.String()), zap.Error(err))
			result.Skipped++
			continue
		}
		result.Affected++
	}

	s.logger.Info("Users deleted",
		zap.String("actor_id", input.ActorID.String()),
		zap.Int("affected", result.Affected),
		zap.Int("skipped", result.Skipped))

	return result, nil
}

// applyToUsers loads each target, applies the mutation and saves. Failures
// on individual targets are counted as skipped so one bad ID does not abort
// the whole selection.
func (s *UserService) applyToUsers(ctx context.Context, input BulkUserInput, apply func(*identity.User) error) (*BulkUserResult, error) {
	result := &BulkUserResult{}

	for _, id := range input.UserIDs {
		user, err := s.userRepo.FindByID(ctx, id)
		if err != nil {
			result.Skipped++
			continue
		}

		if err := apply(user); err != nil {
			result.Skipped++
			continue
		}

		if err := s.userRepo.Save(ctx, user); err != nil {
			s.logger.Error("Failed to save user during bulk operation",
				zap.String("user_id", id.String()), zap.Error(err))
			result.Skipped++
			continue
		}

		result.Affected++
	}

	s.logger.Info("Bulk user operation applied",
		zap.String("actor_id", input.ActorID.String()),
		zap.Int("affected", result.Affected),
		zap.Int("skipped", result.Skipped))

	return result, nil
}
