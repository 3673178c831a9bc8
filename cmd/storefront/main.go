package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	carthttp "github.com/freshfarm/storefront/internal/cart/delivery/http"
	catalogclient "github.com/freshfarm/storefront/internal/catalog/client"
	cataloghttp "github.com/freshfarm/storefront/internal/catalog/delivery/http"
	catalogstore "github.com/freshfarm/storefront/internal/catalog/store"
	checkoutclient "github.com/freshfarm/storefront/internal/checkout/client"
	checkouthttp "github.com/freshfarm/storefront/internal/checkout/delivery/http"
	"github.com/freshfarm/storefront/internal/config"
	favoriteshttp "github.com/freshfarm/storefront/internal/favorites/delivery/http"
	favoritesrepo "github.com/freshfarm/storefront/internal/favorites/repository"
	"github.com/freshfarm/storefront/internal/orders"
	ordersdomain "github.com/freshfarm/storefront/internal/orders/domain"
	ordersrepo "github.com/freshfarm/storefront/internal/orders/repository"
	"github.com/freshfarm/storefront/internal/pricing"
	"github.com/freshfarm/storefront/internal/session"
	"github.com/freshfarm/storefront/kafka"
	"github.com/freshfarm/storefront/pkg/database"
	"github.com/freshfarm/storefront/pkg/logger"
	"github.com/freshfarm/storefront/pkg/tracing"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.LogLevel, cfg.IsDevelopment())

	logger.Logger.Info().
		Str("environment", cfg.Environment).
		Str("upstream", cfg.UpstreamURL).
		Msg("Starting storefront service")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Connect to the order journal database
	gormDB, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open health check connection")
	}
	defer sqlDB.Close()

	if err := gormDB.AutoMigrate(&ordersdomain.Order{}, &ordersdomain.OrderItem{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Redis backs favorites persistence
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	// Kafka is optional; without brokers the service journals orders only
	var publisher *kafka.Publisher
	var recorder *orders.Recorder
	orderRepo := ordersrepo.NewGormOrderRepository(gormDB)
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize Kafka publisher, events disabled")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}
	if publisher != nil {
		recorder = orders.NewRecorder(orderRepo, publisher)
	} else {
		recorder = orders.NewRecorder(orderRepo, nil)
	}

	// Load the catalog snapshot from the upstream restaurant API
	catStore := catalogstore.New()
	catClient := catalogclient.New(cfg.UpstreamURL, cfg.ClientTimeout)
	refreshCatalog(catStore, catClient)

	if len(cfg.KafkaBrokers) > 0 {
		consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.ServiceName, []string{kafka.TopicMenuUpdated})
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize Kafka consumer, menu refresh disabled")
		} else {
			defer consumer.Close()
			consumer.RegisterHandler(kafka.EventTypeMenuUpdated, func(ctx context.Context, _ []byte) error {
				logger.Info(ctx).Msg("Menu updated event received, refreshing catalog")
				refreshCatalog(catStore, catClient)
				return nil
			})
			consumer.Start(context.Background())
		}
	}

	// Shared collaborators for every session
	engine := pricing.NewEngine(cfg.Pricing.TaxRate, cfg.Pricing.DeliveryCharge, cfg.Pricing.FreeDeliveryOver)
	orderClient := checkoutclient.NewOrderClient(cfg.UpstreamURL, cfg.ClientTimeout)
	paymentClient := checkoutclient.NewPaymentClient(cfg.UpstreamURL, cfg.RazorpayKeyID, cfg.MerchantName, cfg.ClientTimeout)
	sessions := session.NewManager(
		favoritesrepo.NewRedisRepository(redisClient),
		engine,
		orderClient,
		paymentClient,
		recorder,
	)

	ordersHandler, err := orders.InitializeHandler(gormDB)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize orders handler")
	}

	// Setup router
	router := mux.NewRouter()

	cataloghttp.NewCatalogHandler(catStore).RegisterRoutes(router)
	carthttp.NewCartHandler(sessions, catStore, engine).RegisterRoutes(router)
	favoriteshttp.NewFavoritesHandler(sessions, catStore).RegisterRoutes(router)
	checkouthttp.NewCheckoutHandler(sessions, catStore).RegisterRoutes(router)
	ordersHandler.RegisterRoutes(router)

	router.HandleFunc("/health", healthHandler(sqlDB, redisClient)).Methods("GET")
	router.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", cfg.HTTPPort).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	go func() {
		if err := http.ListenAndServe(":"+cfg.HTTPPort, c.Handler(router)); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func refreshCatalog(store *catalogstore.Store, client *catalogclient.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	snap, err := client.FetchSnapshot(ctx)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Catalog fetch failed, serving previous snapshot")
		return
	}
	store.Replace(snap)
}

func healthHandler(db *sql.DB, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "healthy"}
		code := http.StatusOK

		if err := db.PingContext(r.Context()); err != nil {
			status["status"] = "unhealthy"
			status["database"] = err.Error()
			code = http.StatusServiceUnavailable
		}
		if err := redisClient.Ping(r.Context()).Err(); err != nil {
			status["status"] = "unhealthy"
			status["redis"] = err.Error()
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(status)
	}
}
