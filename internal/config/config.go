package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/freshfarm/storefront/pkg/database"
)

// PricingConfig holds the tax and delivery parameters. Defaults match the
// storefront's observed behavior: 18% GST, flat 50 delivery charge waived on
// subtotals strictly above 500.
type PricingConfig struct {
	TaxRate          float64
	DeliveryCharge   float64
	FreeDeliveryOver float64
}

// Config holds the storefront service configuration
type Config struct {
	ServiceName   string
	Environment   string
	LogLevel      string
	HTTPPort      string
	UpstreamURL   string
	RazorpayKeyID string
	MerchantName  string
	ClientTimeout time.Duration

	RedisAddr    string
	KafkaBrokers []string

	Database database.Config
	Pricing  PricingConfig
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		ServiceName:   getEnv("OTEL_SERVICE_NAME", "storefront-service"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		HTTPPort:      getEnv("HTTP_PORT", "8084"),
		UpstreamURL:   getEnv("UPSTREAM_BASE_URL", "http://localhost:5000"),
		RazorpayKeyID: getEnv("RAZORPAY_KEY_ID", "rzp_test_TJOrQglqT6B38A"),
		MerchantName:  getEnv("MERCHANT_NAME", "Fresh Farm"),
		ClientTimeout: getDuration("CLIENT_TIMEOUT", 30*time.Second),

		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers: getList("KAFKA_BROKERS", nil),

		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "storefrontdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		Pricing: PricingConfig{
			TaxRate:          getFloat("TAX_RATE", 0.18),
			DeliveryCharge:   getFloat("DELIVERY_CHARGE", 50),
			FreeDeliveryOver: getFloat("FREE_DELIVERY_OVER", 500),
		},
	}
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
