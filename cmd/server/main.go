package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	identityapp "github.com/inventoria/backend/internal/application/identity"
	inventoryapp "github.com/inventoria/backend/internal/application/inventory"
	"github.com/inventoria/backend/internal/infrastructure/auth"
	"github.com/inventoria/backend/internal/infrastructure/cache"
	"github.com/inventoria/backend/internal/infrastructure/config"
	"github.com/inventoria/backend/internal/infrastructure/logger"
	"github.com/inventoria/backend/internal/infrastructure/persistence"
	"github.com/inventoria/backend/internal/infrastructure/telemetry"
	"github.com/inventoria/backend/internal/interfaces/http/handler"
	"github.com/inventoria/backend/internal/interfaces/http/middleware"
	"github.com/inventoria/backend/internal/interfaces/http/router"
)

// version is set at build time via -ldflags
var version = "dev"

//	@title			Inventoria API
//	@version		1.0
//	@description	Inventory management backend with custom item identifiers and per-inventory field schemas.

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Inventoria",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	// Tracing first so the DB plugin can attach to an active provider
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
			Enabled:         true,
			SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
			DBName:          cfg.Database.DBName,
		}, log)
		if err := dbTracing.RegisterOtelGorm(db.DB); err != nil {
			log.Warn("Failed to register database tracing", zap.Error(err))
		}
	}

	// Redis backs the token blacklist. Fall back to the in-process
	// blacklist when Redis is unreachable so a cache outage does not
	// take authentication down with it.
	var blacklist auth.TokenBlacklist
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		log.Info("Redis connected")
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	inventoryRepo := persistence.NewGormInventoryRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	fieldRepo := persistence.NewGormCustomFieldRepository(db.DB)
	formatRepo := persistence.NewGormIDFormatRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, blacklist, log)
	inventoryService := inventoryapp.NewInventoryService(inventoryRepo, log)
	itemService := inventoryapp.NewItemService(inventoryRepo, itemRepo, formatRepo, fieldRepo, itemRepo, log)
	fieldService := inventoryapp.NewCustomFieldService(inventoryRepo, fieldRepo, log)
	formatService := inventoryapp.NewIDFormatService(inventoryRepo, formatRepo, log)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	itemHandler := handler.NewItemHandler(itemService)
	fieldHandler := handler.NewCustomFieldHandler(fieldService)
	formatHandler := handler.NewIDFormatHandler(formatService)
	systemHandler := handler.NewSystemHandler(db, redisClient, cfg.App.Name, version)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	if cfg.Telemetry.Enabled {
		engine.Use(middleware.Tracing(cfg.Telemetry.ServiceName, true))
		engine.Use(middleware.SpanErrorMarker())
	}

	// Tighter limit for credential-guessing surfaces
	var authRoutes router.RouteRegistrar = authHandler
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRoutes = registrarWithMiddleware(authHandler, middleware.RateLimit(authLimiter))
	}

	r := router.New(engine, router.WithAPIVersion("v1"))

	r.Use(middleware.JWTAuthMiddleware(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/health",
			"/api/v1/ping",
		},
		Logger: log,
	}))

	r.Register(authRoutes).
		Register(userHandler).
		Register(inventoryHandler).
		Register(itemHandler).
		Register(fieldHandler).
		Register(formatHandler).
		Register(systemHandler)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// registrarWithMiddleware wraps a registrar so its routes register on a
// subgroup carrying extra middleware.
func registrarWithMiddleware(registrar router.RouteRegistrar, mw ...gin.HandlerFunc) router.RouteRegistrar {
	return wrappedRegistrar{registrar: registrar, middleware: mw}
}

type wrappedRegistrar struct {
	registrar  router.RouteRegistrar
	middleware []gin.HandlerFunc
}

func (w wrappedRegistrar) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("")
	group.Use(w.middleware...)
	w.registrar.RegisterRoutes(group)
}
