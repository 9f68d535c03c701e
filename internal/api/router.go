package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harvestconnect/delivery-service/internal/api/handler"
	"github.com/harvestconnect/delivery-service/internal/core/delivery"
	"github.com/harvestconnect/delivery-service/internal/core/service"
	mongodb "github.com/harvestconnect/delivery-service/internal/infrastructure/db/mongo"
	redisdb "github.com/harvestconnect/delivery-service/internal/infrastructure/db/redis"
	"github.com/harvestconnect/delivery-service/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered, plus the
// quote-audit dispatcher the caller must Start before serving traffic.
func NewRouter(db *mongo.Database, rdb *goredis.Client, quoteWorkers int, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("harvest_delivery"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	calc := delivery.NewCalculator()

	orderRepo := mongodb.NewOrderRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	quoteRepo := mongodb.NewQuoteRepository(db)
	estimateCache := redisdb.NewEstimateCache(rdb)

	quoteService := service.NewQuoteService(quoteRepo, log)
	dispatcher := queue.NewDispatcher(quoteWorkers, quoteService, log)

	deliveryService := service.NewDeliveryService(calc, estimateCache, dispatcher, quoteRepo, log)
	orderService := service.NewOrderService(orderRepo, productRepo, calc, log)

	deliveryHandler := handler.NewDeliveryHandler(deliveryService, deliveryService)
	orderHandler := handler.NewOrderHandler(orderService)

	// --- Delivery routes ---
	e.POST("/v1/delivery/estimate", deliveryHandler.Estimate)
	e.POST("/v1/delivery/estimate/multi", deliveryHandler.MultiSellerEstimate)
	e.GET("/v1/delivery/vehicles", deliveryHandler.Vehicles)
	e.GET("/v1/delivery/stats", deliveryHandler.QuoteStats)

	// --- Order routes ---
	e.POST("/v1/orders", orderHandler.Create)
	e.GET("/v1/orders/:reference", orderHandler.Get)
	e.GET("/v1/orders", orderHandler.List)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())

	return e, dispatcher
}
