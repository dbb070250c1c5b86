package routes

import (
	"time"

	"immowaechter-http-service/internal/app/controllers"
	"immowaechter-http-service/internal/app/middleware"
	"immowaechter-http-service/internal/domain/services/container"
	"immowaechter-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.AppBaseURL)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// Force UTF-8 JSON responses
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})

	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	middleware.InitAuthMiddleware(cfg, db)

	// Swagger documentation route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, db, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	db *gorm.DB,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, db, container)
	registerAuthenticatedRoutes(api, container)
	registerAdminRoutes(api, container)
}

// registerPublicRoutes registers routes that need no authentication
func registerPublicRoutes(
	api *gin.RouterGroup,
	db *gorm.DB,
	container *container.ServiceContainer,
) {
	// 10 requests per second per IP, bursts of 20
	api.Use(middleware.IPRateLimiter(10, 20))

	// Health probes
	healthController := controllers.NewHealthCheckController(db)
	api.GET("/ping", healthController.Ping)
	api.GET("/health", healthController.Health)

	// Authentication
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.PathRateLimiter(5, 10))
	authGroup.POST("/login", controllers.HandleJWTFunc(container, "login"))
	authGroup.POST("/register", controllers.HandleJWTFunc(container, "register"))

	// Waitlist signup from the landing page
	waitlistGroup := api.Group("/waitlist")
	waitlistGroup.Use(middleware.PathRateLimiter(5, 10))
	waitlistGroup.POST("", controllers.HandleWaitlistFunc(container, "join"))
	waitlistGroup.GET("/confirm", controllers.HandleWaitlistFunc(container, "confirm"))
}

// registerAuthenticatedRoutes registers routes for logged-in owners
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateOwner())

	// 30 requests per second per IP, bursts of 50
	auth.Use(middleware.IPRateLimiter(30, 50))

	// Property routes
	propertyGroup := auth.Group("/properties")
	propertyGroup.GET("", controllers.HandlePropertyFunc(container, "getProperties"))
	propertyGroup.GET("/:id", controllers.HandlePropertyFunc(container, "getProperty"))
	propertyGroup.POST("", controllers.HandlePropertyFunc(container, "createProperty"))
	propertyGroup.PUT("/:id", controllers.HandlePropertyFunc(container, "updateProperty"))
	propertyGroup.DELETE("/:id", controllers.HandlePropertyFunc(container, "deleteProperty"))
	propertyGroup.GET("/:id/export", controllers.HandlePropertyFunc(container, "exportProperty"))

	// Component routes
	componentGroup := auth.Group("/components")
	componentGroup.GET("", controllers.HandleComponentFunc(container, "getComponents"))
	componentGroup.GET("/:id", controllers.HandleComponentFunc(container, "getComponent"))
	componentGroup.POST("", controllers.HandleComponentFunc(container, "createComponent"))
	componentGroup.PUT("/:id", controllers.HandleComponentFunc(container, "updateComponent"))
	componentGroup.DELETE("/:id", controllers.HandleComponentFunc(container, "deleteComponent"))
	componentGroup.POST("/:id/maintenance", controllers.HandleComponentFunc(container, "logMaintenance"))
	componentGroup.GET("/:id/maintenance", controllers.HandleComponentFunc(container, "getMaintenanceHistory"))
	componentGroup.GET("/:id/risk", controllers.HandleComponentFunc(container, "getComponentRisk"))

	// Dashboard routes
	dashboardGroup := auth.Group("/dashboard")
	dashboardGroup.GET("/risk-summary", controllers.HandleDashboardFunc(container, "getRiskSummary"))
	dashboardGroup.GET("/risk-trend", middleware.CacheByParams(1*time.Minute, "timeframe", "propertyId"), controllers.HandleDashboardFunc(container, "getRiskTrend"))

	// Notification routes
	notificationGroup := auth.Group("/notifications")
	notificationGroup.GET("", controllers.HandleNotificationFunc(container, "getNotifications"))
	notificationGroup.POST("/:id/read", controllers.HandleNotificationFunc(container, "markRead"))
	notificationGroup.POST("/read-all", controllers.HandleNotificationFunc(container, "markAllRead"))

	// Web Push routes
	pushGroup := auth.Group("/push")
	pushGroup.POST("/subscribe", controllers.HandlePushFunc(container, "subscribe"))
	pushGroup.POST("/unsubscribe", controllers.HandlePushFunc(container, "unsubscribe"))
	pushGroup.GET("/vapid-key", controllers.HandlePushFunc(container, "getVAPIDKey"))

	// Profile routes
	auth.GET("/profile", controllers.HandleOwnerFunc(container, "getProfile"))
	auth.PUT("/profile/preferences", controllers.HandleOwnerFunc(container, "updatePreferences"))
}

// registerAdminRoutes registers routes restricted to administrators
func registerAdminRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AuthenticateAdmin())
	adminGroup.Use(middleware.IPRateLimiter(30, 50))

	adminGroup.GET("/owners", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleAdminFunc(container, "getOwners"))
	adminGroup.GET("/waitlist", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleAdminFunc(container, "getWaitlistEntries"))

	adminGroup.POST("/risk/recompute", controllers.HandleAdminFunc(container, "recomputeRisk"))
	adminGroup.POST("/risk/snapshots", controllers.HandleAdminFunc(container, "writeSnapshots"))

	adminGroup.GET("/consequences", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleAdminFunc(container, "getConsequences"))
	adminGroup.POST("/consequences", controllers.HandleAdminFunc(container, "createConsequence"))
	adminGroup.PUT("/consequences/:id", controllers.HandleAdminFunc(container, "updateConsequence"))
	adminGroup.DELETE("/consequences/:id", controllers.HandleAdminFunc(container, "deleteConsequence"))
}
