package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"nirvana-admin-backend/internal/config"
	infraCache "nirvana-admin-backend/internal/infrastructure/cache"
	"nirvana-admin-backend/internal/upstream"
	"nirvana-admin-backend/pkg/cache"
	"nirvana-admin-backend/pkg/jwt"

	analyticsHandler "nirvana-admin-backend/internal/domains/analytics/handler"
	analyticsRepo "nirvana-admin-backend/internal/domains/analytics/repository"
	analyticsService "nirvana-admin-backend/internal/domains/analytics/service"
	customerHandler "nirvana-admin-backend/internal/domains/customers/handler"
	customerRepo "nirvana-admin-backend/internal/domains/customers/repository"
	customerService "nirvana-admin-backend/internal/domains/customers/service"
	orderHandler "nirvana-admin-backend/internal/domains/orders/handler"
	orderRepo "nirvana-admin-backend/internal/domains/orders/repository"
	orderService "nirvana-admin-backend/internal/domains/orders/service"
	productHandler "nirvana-admin-backend/internal/domains/products/handler"
	productRepo "nirvana-admin-backend/internal/domains/products/repository"
	productService "nirvana-admin-backend/internal/domains/products/service"
	returnHandler "nirvana-admin-backend/internal/domains/returns/handler"
	returnRepo "nirvana-admin-backend/internal/domains/returns/repository"
	returnService "nirvana-admin-backend/internal/domains/returns/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application. It is the root of
// the dependency graph; everything in it is a singleton for the app
// lifetime.
type Container struct {
	// Infrastructure layer - shared across all domains
	Config         *config.Config
	Cache          cache.Cache
	JWTManager     *jwt.Manager
	UpstreamClient *upstream.Client

	// Repository layer (data access)
	ReturnRepo    returnRepo.Repository
	OrderRepo     orderRepo.Repository
	ProductRepo   productRepo.Repository
	CustomerRepo  customerRepo.Repository
	AnalyticsRepo analyticsRepo.Repository

	// Service layer (business logic)
	ReturnService    returnService.ReturnService
	OrderService     orderService.OrderService
	ProductService   productService.ProductService
	CustomerService  customerService.CustomerService
	AnalyticsService analyticsService.AnalyticsService

	// Handler layer (HTTP)
	ReturnHandler    *returnHandler.ReturnHandler
	OrderHandler     *orderHandler.OrderHandler
	ProductHandler   *productHandler.ProductHandler
	CustomerHandler  *customerHandler.CustomerHandler
	AnalyticsHandler *analyticsHandler.AnalyticsHandler

	redisCache *infraCache.RedisCache
}

const dashboardCacheTTL = 60 * time.Second

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the whole dependency graph. Initialization order
// matters: config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	// Step 1: configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("config loaded")

	// Step 2: infrastructure
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Connect(context.Background()); err != nil {
		// Redis only backs report caching, so a missing instance degrades
		// to uncached dashboards instead of failing startup.
		log.Warn().Err(err).Msg("redis connection failed, dashboard caching disabled")
	} else {
		c.Cache = redisCache
		c.redisCache = redisCache
		log.Info().Str("host", cfg.Redis.Host).Msg("redis connected")
	}

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)
	c.UpstreamClient = upstream.NewClient(cfg.Upstream)
	log.Info().Str("base_url", c.UpstreamClient.BaseURL()).Msg("commerce API client ready")

	// Step 3: repositories
	c.ReturnRepo = returnRepo.NewUpstreamRepository(c.UpstreamClient)
	c.OrderRepo = orderRepo.NewUpstreamRepository(c.UpstreamClient)
	c.ProductRepo = productRepo.NewUpstreamRepository(c.UpstreamClient)
	c.CustomerRepo = customerRepo.NewUpstreamRepository(c.UpstreamClient)
	c.AnalyticsRepo = analyticsRepo.NewUpstreamRepository(c.UpstreamClient)

	// Step 4: services
	c.ReturnService = returnService.NewReturnService(c.ReturnRepo, returnService.NewRefundCalculator())
	c.OrderService = orderService.NewOrderService(c.OrderRepo)
	c.ProductService = productService.NewProductService(c.ProductRepo)
	c.CustomerService = customerService.NewCustomerService(c.CustomerRepo)
	c.AnalyticsService = analyticsService.NewAnalyticsService(c.AnalyticsRepo, c.OrderRepo, c.Cache, dashboardCacheTTL)

	// Step 5: handlers
	c.ReturnHandler = returnHandler.NewReturnHandler(c.ReturnService)
	c.OrderHandler = orderHandler.NewOrderHandler(c.OrderService)
	c.ProductHandler = productHandler.NewProductHandler(c.ProductService)
	c.CustomerHandler = customerHandler.NewCustomerHandler(c.CustomerService)
	c.AnalyticsHandler = analyticsHandler.NewAnalyticsHandler(c.AnalyticsService)

	log.Info().Msg("container initialized")
	return c, nil
}

// HealthCheck verifies the optional infrastructure pieces.
func (c *Container) HealthCheck(ctx context.Context) map[string]string {
	checks := map[string]string{}
	if c.Cache != nil {
		if err := c.Cache.Ping(ctx); err != nil {
			checks["redis"] = "down"
		} else {
			checks["redis"] = "up"
		}
	} else {
		checks["redis"] = "disabled"
	}
	return checks
}

// Cleanup releases held connections. Called on shutdown.
func (c *Container) Cleanup() {
	if c.redisCache != nil {
		if err := c.redisCache.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}
}
