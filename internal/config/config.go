package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Session  SessionConfig
	Storage  StorageConfig
	MySQL    MySQLConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
	Checkout CheckoutConfig
	Pricing  PricingConfig
}

type ServerConfig struct {
	AppEnv             string
	HTTPPort           string
	CORSAllowedOrigins []string
	SearchDebounce     time.Duration
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type SessionConfig struct {
	Secret  string
	TTL     time.Duration
	IdleTTL time.Duration
}

type StorageConfig struct {
	Driver string
}

type MySQLConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CatalogConfig struct {
	// Path overrides the embedded catalog when set.
	Path string
}

type CheckoutConfig struct {
	SettleDelay time.Duration
	StrictEdits bool
}

type PricingConfig struct {
	FlatFee               int64
	FreeShippingThreshold int64
	CODFee                int64
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:             getEnv("APP_ENV", "development"),
			HTTPPort:           getEnv("HTTP_PORT", ":8080"),
			CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			SearchDebounce:     time.Duration(getEnvInt("SEARCH_DEBOUNCE_MS", 300)) * time.Millisecond,
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Session: SessionConfig{
			Secret:  getEnv("SESSION_SECRET", "change-me-in-production"),
			TTL:     time.Duration(getEnvInt("SESSION_TTL_HOURS", 720)) * time.Hour,
			IdleTTL: time.Duration(getEnvInt("SESSION_IDLE_TTL_MINUTES", 120)) * time.Minute,
		},
		Storage: StorageConfig{
			Driver: getEnv("STORAGE_DRIVER", "memory"),
		},
		MySQL: MySQLConfig{
			DSN:             getEnv("MYSQL_DSN", "root:root@tcp(127.0.0.1:3306)/bostany?parseTime=true"),
			MaxOpenConns:    getEnvInt("MYSQL_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("MYSQL_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: time.Duration(getEnvInt("MYSQL_CONN_MAX_LIFETIME", 300)) * time.Second,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", ""),
		},
		Checkout: CheckoutConfig{
			SettleDelay: time.Duration(getEnvInt("CHECKOUT_SETTLE_MS", 600)) * time.Millisecond,
			StrictEdits: getEnvBool("CHECKOUT_STRICT_EDITS", false),
		},
		Pricing: PricingConfig{
			FlatFee:               int64(getEnvInt("SHIPPING_FLAT_FEE", 30)),
			FreeShippingThreshold: int64(getEnvInt("FREE_SHIPPING_THRESHOLD", 300)),
			CODFee:                int64(getEnvInt("COD_FEE", 10)),
		},
	}
}

// IsDevelopment reports whether APP_ENV selects development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.AppEnv == "dev"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		var out []string
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return fallback
}
