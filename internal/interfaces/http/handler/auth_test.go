package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appidentity "github.com/inventoria/backend/internal/application/identity"
	"github.com/inventoria/backend/internal/domain/identity"
	"github.com/inventoria/backend/internal/domain/shared"
	"github.com/inventoria/backend/internal/infrastructure/auth"
	"github.com/inventoria/backend/internal/infrastructure/config"
	"github.com/inventoria/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testJWTConfig returns a default JWT config for tests
func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "test-secret-key-32-characters-long",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
		MaxRefreshCount:        10,
	}
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]identity.User, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func setupAuthTest(t *testing.T) (*gin.Engine, *MockUserRepository) {
	t.Helper()

	userRepo := new(MockUserRepository)
	jwtService := auth.NewJWTService(testJWTConfig())
	blacklist := auth.NewInMemoryTokenBlacklist()
	authService := appidentity.NewAuthService(userRepo, jwtService, blacklist, zap.NewNop())
	authHandler := NewAuthHandler(authService)

	engine := gin.New()
	api := engine.Group("/api/v1")
	authHandler.RegisterRoutes(api)

	return engine, userRepo
}

func TestAuthHandler_Register(t *testing.T) {
	engine, userRepo := setupAuthTest(t)

	userRepo.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(false, nil)
	userRepo.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
	userRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

	body, _ := json.Marshal(RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	req := httptest.NewRequest("POST", "/api/v1/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool          `json:"success"`
		Data    LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.Token.AccessToken)
	assert.NotEmpty(t, resp.Data.Token.RefreshToken)
	assert.Equal(t, "alice", resp.Data.User.Username)
	assert.Equal(t, "user", resp.Data.User.Role)

	userRepo.AssertExpectations(t)
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	engine, userRepo := setupAuthTest(t)

	userRepo.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(true, nil)

	body, _ := json.Marshal(RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	req := httptest.NewRequest("POST", "/api/v1/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "EMAIL_TAKEN")
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	engine, _ := setupAuthTest(t)

	req := httptest.NewRequest("POST", "/api/v1/auth/register", bytes.NewReader([]byte(`{"email":"not-an-email"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	engine, userRepo := setupAuthTest(t)

	user, err := identity.NewUser("bob", "bob@example.com", "password123")
	require.NoError(t, err)

	userRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(user, nil)
	userRepo.On("Save", mock.Anything, user).Return(nil)

	body, _ := json.Marshal(LoginRequest{Email: "bob@example.com", Password: "password123"})
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bob", resp.Data.User.Username)
	assert.Equal(t, "Bearer", resp.Data.Token.TokenType)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	engine, userRepo := setupAuthTest(t)

	user, err := identity.NewUser("bob", "bob@example.com", "password123")
	require.NoError(t, err)

	userRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(user, nil)

	body, _ := json.Marshal(LoginRequest{Email: "bob@example.com", Password: "wrong-password"})
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
}

func TestAuthHandler_Login_BlockedAccount(t *testing.T) {
	engine, userRepo := setupAuthTest(t)

	user, err := identity.NewUser("bob", "bob@example.com", "password123")
	require.NoError(t, err)
	require.NoError(t, user.Block())

	userRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(user, nil)

	body, _ := json.Marshal(LoginRequest{Email: "bob@example.com", Password: "password123"})
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "ACCOUNT_BLOCKED")
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	jwtService := auth.NewJWTService(testJWTConfig())
	blacklist := auth.NewInMemoryTokenBlacklist()
	authService := appidentity.NewAuthService(userRepo, jwtService, blacklist, zap.NewNop())
	authHandler := NewAuthHandler(authService)

	user, err := identity.NewUser("carol", "carol@example.com", "password123")
	require.NoError(t, err)
	user.ID = uuid.New()

	pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
	require.NoError(t, err)

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	engine := gin.New()
	api := engine.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		Logger:     zap.NewNop(),
	}))
	authHandler.RegisterRoutes(api)

	req := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data UserResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, user.ID, resp.Data.ID)
	assert.Equal(t, "carol", resp.Data.Username)
}
