package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration.
// Populated from environment variables with sensible defaults.
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Catalog CatalogConfig
	Store   StoreConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// CatalogConfig points at the external product and review sources.
type CatalogConfig struct {
	ProductsURL string
	ReviewsPath string // local JSON file; empty disables file loading
}

// StoreConfig carries the storefront business constants. All monetary
// amounts are whole BDT.
type StoreConfig struct {
	DeliveryFee       int64   // flat surcharge, always applied
	ShippingFee       int64   // flat surcharge, always applied
	StartingBalance   int64   // initial balance when none persisted
	AddFundsIncrement int64   // amount credited per add-funds action
	CouponCode        string  // sole valid coupon code
	CouponRate        float64 // fractional discount on subtotal
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "SmartShop API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Catalog: CatalogConfig{
			ProductsURL: getEnv("CATALOG_PRODUCTS_URL", "https://fakestoreapi.com/products"),
			ReviewsPath: getEnv("REVIEWS_PATH", "reviews.json"),
		},
		Store: StoreConfig{
			DeliveryFee:       getEnvInt64("STORE_DELIVERY_FEE", 50),
			ShippingFee:       getEnvInt64("STORE_SHIPPING_FEE", 30),
			StartingBalance:   getEnvInt64("STORE_STARTING_BALANCE", 1000),
			AddFundsIncrement: getEnvInt64("STORE_ADD_FUNDS_INCREMENT", 1000),
			CouponCode:        getEnv("STORE_COUPON_CODE", "SMART10"),
			CouponRate:        getEnvFloat("STORE_COUPON_RATE", 0.10),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the loaded config for values that would break the
// pricing or checkout invariants.
func (c *Config) Validate() error {
	if c.Store.DeliveryFee < 0 || c.Store.ShippingFee < 0 {
		return fmt.Errorf("surcharges must be non-negative")
	}
	if c.Store.StartingBalance < 0 {
		return fmt.Errorf("STORE_STARTING_BALANCE must be non-negative")
	}
	if c.Store.AddFundsIncrement <= 0 {
		return fmt.Errorf("STORE_ADD_FUNDS_INCREMENT must be positive")
	}
	if c.Store.CouponRate < 0 || c.Store.CouponRate > 1 {
		return fmt.Errorf("STORE_COUPON_RATE must be within [0, 1]")
	}
	if c.Store.CouponCode == "" {
		return fmt.Errorf("STORE_COUPON_CODE must be set")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
