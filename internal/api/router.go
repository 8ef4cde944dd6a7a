package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/usermanager/user-management-api/internal/api/handler"
	"github.com/usermanager/user-management-api/internal/api/middleware"
	"github.com/usermanager/user-management-api/internal/core/domain"
	"github.com/usermanager/user-management-api/internal/core/service"
	"github.com/usermanager/user-management-api/internal/infrastructure/config"
	mongorepo "github.com/usermanager/user-management-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/usermanager/user-management-api/internal/infrastructure/db/redis"
)

const (
	authRateLimit  = 10
	authRateWindow = 15 * time.Minute
)

// NewRouter wires repositories, services, handlers and middleware into a
// configured echo instance. A nil rdb disables auth rate limiting.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewRequestValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Secure())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("usermanager"))
	e.Use(requestLogger(log))

	userRepo := mongorepo.NewUserRepository(db)
	auditRepo := mongorepo.NewAuditRepository(db)

	creds := service.NewCredentialService(cfg.JWTSecret, cfg.JWTExpire, cfg.BcryptCost)
	authService := service.NewAuthService(userRepo, auditRepo, creds, log)
	userService := service.NewUserService(userRepo, auditRepo, creds, log)
	auditService := service.NewAuditService(auditRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	auditHandler := handler.NewAuditHandler(auditService)
	healthHandler := handler.NewHealthHandler(db)

	var limiter middleware.Limiter
	if rdb != nil {
		limiter = redisinfra.NewRateLimiter(rdb, authRateLimit, authRateWindow)
	}

	bearer := middleware.Auth(creds, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	authLimited := middleware.RateLimit(limiter, "auth", log)

	e.GET("/metrics", echoprometheus.NewHandler())

	apiGroup := e.Group("/api")
	apiGroup.GET("/health", healthHandler.Check)

	auth := apiGroup.Group("/auth")
	auth.POST("/register", authHandler.Register, authLimited)
	auth.POST("/login", authHandler.Login, authLimited)
	auth.GET("/me", authHandler.Me, bearer)
	auth.PUT("/profile", authHandler.UpdateProfile, bearer)
	auth.PUT("/password", authHandler.ChangePassword, bearer)

	users := apiGroup.Group("/users", bearer)
	users.GET("", userHandler.List, adminOnly)
	users.POST("", userHandler.Create, adminOnly)
	users.GET("/search", userHandler.Search)
	users.POST("/seed", userHandler.Seed, adminOnly)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	audit := apiGroup.Group("/audit", bearer)
	audit.GET("", auditHandler.List)
	audit.GET("/entity/:id", auditHandler.ListByEntity)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
