package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/inventoria/backend/internal/domain/identity"
)

// RegisterInput contains the input for user registration
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput contains the input for user login
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	User                  UserInfo
}

// UserInfo contains basic user information returned by identity operations
type UserInfo struct {
	ID          uuid.UUID
	Username    string
	Email       string
	Role        identity.Role
	Status      identity.UserStatus
	LastLoginAt *time.Time
	CreatedAt   time.Time
}

// NewUserInfo maps a user aggregate to its DTO
func NewUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Role:        user.Role,
		Status:      user.Status,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the result of a token refresh
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains the input for user logout
type LogoutInput struct {
	UserID   uuid.UUID
	TokenJTI string
	TokenTTL time.Duration
}

// ChangePasswordInput contains the input for password change
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// BulkUserInput identifies the targets of a bulk admin operation
type BulkUserInput struct {
	ActorID uuid.UUID
	UserIDs []uuid.UUID
}

// BulkUserResult reports how many users a bulk operation affected
type BulkUserResult struct {
	Affected int
	Skipped  int
}
