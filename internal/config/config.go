package config

import (
	"fmt"     // Error formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // Durations for timeouts and TTLs

	"github.com/joho/godotenv" // For loading .env files
)

// Supported values for DB_DRIVER
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Supported values for TOKEN_MODE
const (
	TokenModeLegacy = "legacy"
	TokenModeJWT    = "jwt"
)

// Config holds the application configuration
type Config struct {
	AppPort string // Application port
	IsProd  bool   // Is production environment

	DBDriver   string // mysql, postgres or sqlite
	DBUser     string // Database user
	DBPassword string // Database password
	DBHost     string // Database host
	DBPort     string // Database port
	DBName     string // Database name
	DBPath     string // SQLite file path

	RedisAddr string // Redis server address, empty disables caching
	RedisPass string // Redis password
	RedisDB   int    // Redis database number

	UploadDir       string // Directory uploaded files are written to
	UploadURLPrefix string // Public URL prefix serving UploadDir

	GeocodeURL       string        // Reverse geocoding endpoint
	GeocodeUserAgent string        // User-Agent sent to the geocoding API
	GeocodeTimeout   time.Duration // Per-request timeout for geocoding
	GeocodeCacheTTL  time.Duration // How long resolved addresses stay cached

	// Extends the attendance fallback to network failures while recording a delivery.
	DeliveryGeocodeFallback bool

	TokenMode string        // legacy or jwt
	JWTSecret string        // JWT secret key
	TokenTTL  time.Duration // JWT lifetime

	LogLevel  string // logrus level name
	LogFormat string // text or json
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	return &Config{
		AppPort:    getEnv("APP_PORT", "8000"),     // Application port
		IsProd:     os.Getenv("IS_PROD") == "true", // Is production environment
		DBDriver:   getEnv("DB_DRIVER", DriverMySQL),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBName:     getEnv("DB_NAME", "uni3"),
		DBPath:     getEnv("DB_PATH", "app.db"),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
		RedisPass:  os.Getenv("REDIS_PASS"),
		RedisDB:    redisDB,

		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		UploadURLPrefix: getEnv("UPLOAD_URL_PREFIX", "/uploads"),

		GeocodeURL:       getEnv("GEOCODE_URL", "https://nominatim.openstreetmap.org/reverse"),
		GeocodeUserAgent: getEnv("GEOCODE_USER_AGENT", "FastAPIApp/1.0"),
		GeocodeTimeout:   getDuration("GEOCODE_TIMEOUT", 10*time.Second),
		GeocodeCacheTTL:  getDuration("GEOCODE_CACHE_TTL", 24*time.Hour),

		DeliveryGeocodeFallback: os.Getenv("DELIVERY_GEOCODE_FALLBACK") == "true",

		TokenMode: getEnv("TOKEN_MODE", TokenModeLegacy),
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  getDuration("TOKEN_TTL", 24*time.Hour),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// Validate reports settings the server cannot start with
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.TokenMode {
	case TokenModeLegacy:
	case TokenModeJWT:
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required when TOKEN_MODE=%s", TokenModeJWT)
		}
	default:
		return fmt.Errorf("unsupported TOKEN_MODE %q", c.TokenMode)
	}
	return nil
}

// DSN builds the data source name for the configured driver
func (c *Config) DSN() string {
	switch c.DBDriver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
	case DriverSQLite:
		return c.DBPath
	default:
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
	}
}

// String masks secrets so the config can be logged at startup
func (c *Config) String() string {
	return fmt.Sprintf("Config{port: %s, db: %s@%s, redis: %q, uploads: %s, token: %s}",
		c.AppPort, c.DBDriver, c.DBHost, c.RedisAddr, c.UploadDir, c.TokenMode)
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
