package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"

	defaultAdminPassword = "admin123"
	defaultAdminSecret   = "your-very-strong-admin-secret"
)

type Config struct {
	App struct {
		Env         string `env:"APP_ENV"      envDefault:"development"`
		Port        string `env:"PORT"         envDefault:"8088"`
		FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
		LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"`
	}
	Store struct {
		Backend       string `env:"STORE_BACKEND"    envDefault:"memory"`
		SQLitePath    string `env:"SQLITE_PATH"      envDefault:"./data/crickethub.db"`
		RedisAddr     string `env:"REDIS_ADDR"       envDefault:"localhost:6379"`
		RedisPassword string `env:"REDIS_PASSWORD"`
		RedisDB       int    `env:"REDIS_DB"         envDefault:"0"`
		KeyPrefix     string `env:"STORE_KEY_PREFIX"`
	}
	DB struct {
		Host     string `env:"DB_HOST"     envDefault:"localhost"`
		Port     string `env:"DB_PORT"     envDefault:"5432"`
		User     string `env:"DB_USER"     envDefault:"postgres"`
		Password string `env:"DB_PASSWORD" envDefault:"password"`
		Name     string `env:"DB_NAME"     envDefault:"crickethub"`
		SSLMode  string `env:"DB_SSLMODE"  envDefault:"disable"`
	}
	Admin struct {
		Password     string `env:"ADMIN_PASSWORD"      envDefault:"admin123"`
		PasswordHash string `env:"ADMIN_PASSWORD_HASH"`
	}
	JWT struct {
		AdminTokenSecret      string `env:"JWT_ADMIN_TOKEN_SECRET"       envDefault:"your-very-strong-admin-secret"`
		AdminTokenExpiryHours int    `env:"JWT_ADMIN_TOKEN_EXPIRY_HOURS" envDefault:"24"`
	}
	Feed struct {
		PollIntervalSeconds int `env:"FEED_POLL_INTERVAL_SECONDS" envDefault:"10"`
		BannerSeconds       int `env:"FEED_BANNER_SECONDS"        envDefault:"5"`
	}
	Match struct {
		DurationHours int    `env:"MATCH_DURATION_HOURS" envDefault:"4"`
		Timezone      string `env:"MATCH_TIMEZONE"       envDefault:"Asia/Kolkata"`
	}
	Chatbot struct {
		BackendURL     string `env:"CHATBOT_BACKEND_URL"`
		TimeoutSeconds int    `env:"CHATBOT_TIMEOUT_SECONDS" envDefault:"5"`
	}
}

// Global DB instance, set by ConnectDB when the postgres backend is selected.
var DB *gorm.DB

var appConfig *Config
var once sync.Once

// LoadConfig reads the environment (and an optional .env file) into a Config.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}

	// --- App Configuration ---
	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8088")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")
	cfg.App.LogLevel = getEnv("LOG_LEVEL", "info")

	// --- Store Configuration ---
	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(getEnv("STORE_BACKEND", BackendMemory)))
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = BackendMemory
	}
	cfg.Store.SQLitePath = getEnv("SQLITE_PATH", "./data/crickethub.db")
	cfg.Store.RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Store.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.Store.KeyPrefix = getEnv("STORE_KEY_PREFIX", "")

	// --- Database Configuration ---
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "crickethub")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	// --- Admin / JWT Configuration ---
	cfg.Admin.Password = getEnv("ADMIN_PASSWORD", defaultAdminPassword)
	cfg.Admin.PasswordHash = getEnv("ADMIN_PASSWORD_HASH", "")
	cfg.JWT.AdminTokenSecret = getEnv("JWT_ADMIN_TOKEN_SECRET", defaultAdminSecret)

	// --- Match / Chatbot Configuration ---
	cfg.Match.Timezone = getEnv("MATCH_TIMEZONE", "Asia/Kolkata")
	cfg.Chatbot.BackendURL = getEnv("CHATBOT_BACKEND_URL", "")

	ints := []struct {
		key      string
		fallback int
		dst      *int
	}{
		{"REDIS_DB", 0, &cfg.Store.RedisDB},
		{"JWT_ADMIN_TOKEN_EXPIRY_HOURS", 24, &cfg.JWT.AdminTokenExpiryHours},
		{"FEED_POLL_INTERVAL_SECONDS", 10, &cfg.Feed.PollIntervalSeconds},
		{"FEED_BANNER_SECONDS", 5, &cfg.Feed.BannerSeconds},
		{"MATCH_DURATION_HOURS", 4, &cfg.Match.DurationHours},
		{"CHATBOT_TIMEOUT_SECONDS", 5, &cfg.Chatbot.TimeoutSeconds},
	}
	for _, v := range ints {
		n, err := getEnvAsInt(v.key, v.fallback)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", v.key, err)
		}
		*v.dst = n
	}

	switch cfg.Store.Backend {
	case BackendMemory, BackendSQLite, BackendPostgres, BackendRedis:
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND %q: expected memory, sqlite, postgres or redis", cfg.Store.Backend)
	}
	if cfg.Feed.PollIntervalSeconds <= 0 || cfg.Feed.BannerSeconds <= 0 {
		return nil, fmt.Errorf("feed intervals must be positive, got poll=%d banner=%d", cfg.Feed.PollIntervalSeconds, cfg.Feed.BannerSeconds)
	}

	if cfg.JWT.AdminTokenSecret == defaultAdminSecret {
		log.Println("WARNING: Using default JWT secret. Please set JWT_ADMIN_TOKEN_SECRET for production.")
	}
	if cfg.Admin.Password == defaultAdminPassword && cfg.Admin.PasswordHash == "" {
		log.Println("WARNING: Using default admin password. Please set ADMIN_PASSWORD or ADMIN_PASSWORD_HASH.")
	}
	if cfg.Admin.Password == "" && cfg.Admin.PasswordHash == "" {
		log.Println("WARNING: No admin password configured, admin endpoints are open.")
	}

	appConfig = cfg
	return cfg, nil
}

// ConnectDB opens the postgres connection backing the postgres store.
// It sets the global DB variable.
func ConnectDB(dbCfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		dbCfg.DB.Host,
		dbCfg.DB.User,
		dbCfg.DB.Password,
		dbCfg.DB.Name,
		dbCfg.DB.Port,
		dbCfg.DB.SSLMode,
		dbCfg.Match.Timezone,
	)

	gormConfig := &gorm.Config{}
	if dbCfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB
	log.Println("Successfully connected to database!")
	return gormDB, nil
}

// Initialize loads the configuration once and, for the postgres backend,
// connects to the database.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg

		if appConfig.Store.Backend != BackendPostgres {
			return
		}
		if _, err = ConnectDB(*appConfig); err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}

// MatchLocation is the zone fixture dates and times are written in.
// Without tzdata it falls back to a fixed IST offset.
func (c *Config) MatchLocation() *time.Location {
	loc, err := time.LoadLocation(c.Match.Timezone)
	if err != nil {
		log.Printf("WARNING: unknown MATCH_TIMEZONE %q, using +05:30: %v", c.Match.Timezone, err)
		return time.FixedZone("IST", 5*60*60+30*60)
	}
	return loc
}

func (c *Config) MatchDuration() time.Duration {
	return time.Duration(c.Match.DurationHours) * time.Hour
}

func (c *Config) FeedPollInterval() time.Duration {
	return time.Duration(c.Feed.PollIntervalSeconds) * time.Second
}

func (c *Config) FeedBannerDuration() time.Duration {
	return time.Duration(c.Feed.BannerSeconds) * time.Second
}

func (c *Config) ChatbotTimeout() time.Duration {
	return time.Duration(c.Chatbot.TimeoutSeconds) * time.Second
}

// AdminEnabled reports whether admin endpoints require a password.
func (c *Config) AdminEnabled() bool {
	return c.Admin.Password != "" || c.Admin.PasswordHash != ""
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}
