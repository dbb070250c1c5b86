package container

import (
	"context"
	"sync"
	"time"

	"immowaechter-http-service/internal/domain/services"
	"immowaechter-http-service/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer wires all services via dependency injection. Services
// only ever receive their collaborators through constructors; nothing in
// the service layer reaches for ambient credentials or globals.
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// Base services
	jwtService   services.InterfaceJWTService
	redisService *services.RedisService

	// Delivery services
	pushService  services.InterfacePushService
	emailService services.InterfaceEmailService

	// Business services
	ownerService        services.InterfaceOwnerService
	propertyService     services.InterfacePropertyService
	componentService    services.InterfaceComponentService
	consequenceService  services.InterfaceConsequenceService
	riskService         services.InterfaceRiskService
	notificationService services.InterfaceNotificationService
	dashboardService    services.InterfaceDashboardService
	waitlistService     services.InterfaceWaitlistService
	exportService       services.InterfaceExportService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	// Verify Redis connectivity; caching degrades gracefully without it
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			config.Warning("redis connection test failed: %v, caching degraded", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices initializes all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Base services
	c.jwtService = services.NewJWTService(c.config, c.db)
	c.redisService = services.NewRedisService(c.config)

	// Delivery services
	c.pushService = services.NewPushService(c.db, c.config)
	c.emailService = services.NewEmailService(c.config)

	// Business services, dependency order: the dispatcher needs the
	// delivery channels, the risk service needs consequences and the
	// dispatcher, components and dashboard sit on top
	c.ownerService = services.NewOwnerService(c.db, c.config)
	c.propertyService = services.NewPropertyService(c.db, c.config)
	c.consequenceService = services.NewConsequenceService(c.db, c.config)
	c.notificationService = services.NewNotificationService(c.db, c.config, c.pushService, c.emailService)
	c.riskService = services.NewRiskService(c.db, c.config, c.consequenceService, c.notificationService)
	c.componentService = services.NewComponentService(c.db, c.config, c.notificationService)
	c.dashboardService = services.NewDashboardService(c.db, c.config, c.riskService, c.redisService)
	c.waitlistService = services.NewWaitlistService(c.db, c.config, c.emailService)
	c.exportService = services.NewExportService(c.db, c.config, c.propertyService)
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig returns the configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// GetJWTService returns the JWT service
func (c *ServiceContainer) GetJWTService() services.InterfaceJWTService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.jwtService
}

// GetRedisService returns the Redis service
func (c *ServiceContainer) GetRedisService() *services.RedisService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.redisService
}

// GetPushService returns the push service
func (c *ServiceContainer) GetPushService() services.InterfacePushService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pushService
}

// GetEmailService returns the email service
func (c *ServiceContainer) GetEmailService() services.InterfaceEmailService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.emailService
}

// GetOwnerService returns the owner service
func (c *ServiceContainer) GetOwnerService() services.InterfaceOwnerService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ownerService
}

// GetPropertyService returns the property service
func (c *ServiceContainer) GetPropertyService() services.InterfacePropertyService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.propertyService
}

// GetComponentService returns the component service
func (c *ServiceContainer) GetComponentService() services.InterfaceComponentService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.componentService
}

// GetConsequenceService returns the consequence reference data service
func (c *ServiceContainer) GetConsequenceService() services.InterfaceConsequenceService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.consequenceService
}

// GetRiskService returns the risk service
func (c *ServiceContainer) GetRiskService() services.InterfaceRiskService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.riskService
}

// GetNotificationService returns the notification dispatcher
func (c *ServiceContainer) GetNotificationService() services.InterfaceNotificationService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notificationService
}

// GetDashboardService returns the dashboard service
func (c *ServiceContainer) GetDashboardService() services.InterfaceDashboardService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dashboardService
}

// GetWaitlistService returns the waitlist service
func (c *ServiceContainer) GetWaitlistService() services.InterfaceWaitlistService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.waitlistService
}

// GetExportService returns the export service
func (c *ServiceContainer) GetExportService() services.InterfaceExportService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.exportService
}
