package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	APIKey         string // API key for authentication
	TrustedProxies []string

	CropCatalogPath string
	CropSchemaPath  string

	MarketCacheSize int
	MarketCacheTTL  time.Duration

	ReminderInterval time.Duration
	ReminderLeadTime time.Duration

	DiscordToken             string
	DiscordReminderChannelID string

	WorkerCount     int
	WorkerQueueSize int
}

// Load loads the configuration from environment variables.
// A .env file in the working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", defaultLogFormat)),
		LogDir:      getEnv("LOG_DIR", defaultLogDir),
		Environment: getEnv("ENVIRONMENT", defaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", defaultServiceName),
		Version:     getEnv("VERSION", defaultVersion),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", defaultDBName),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),

		CropCatalogPath: getEnv("CROP_CATALOG_PATH", ConfigPathCropCatalog),
		CropSchemaPath:  getEnv("CROP_SCHEMA_PATH", ConfigPathCropSchema),

		DiscordToken:             getEnv("DISCORD_TOKEN", ""),
		DiscordReminderChannelID: getEnv("DISCORD_REMINDER_CHANNEL_ID", ""),
	}

	port, err := strconv.Atoi(getEnv("PORT", defaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	ints := []struct {
		key string
		def int
		dst *int
	}{
		{"DB_MAX_CONNS", defaultDBMaxConns, &cfg.DBMaxConns},
		{"MARKET_CACHE_SIZE", defaultMarketCacheSize, &cfg.MarketCacheSize},
		{"WORKER_COUNT", defaultWorkerCount, &cfg.WorkerCount},
		{"WORKER_QUEUE_SIZE", defaultWorkerQueueSize, &cfg.WorkerQueueSize},
	}
	for _, v := range ints {
		if *v.dst, err = getPositiveInt(v.key, v.def); err != nil {
			return nil, err
		}
	}

	durations := []struct {
		key string
		def time.Duration
		dst *time.Duration
	}{
		{"DB_MAX_CONN_IDLE_TIME", defaultDBMaxConnIdleTime, &cfg.DBMaxConnIdleTime},
		{"DB_MAX_CONN_LIFETIME", defaultDBMaxConnLifetime, &cfg.DBMaxConnLifetime},
		{"MARKET_CACHE_TTL", defaultMarketCacheTTL, &cfg.MarketCacheTTL},
		{"REMINDER_INTERVAL", defaultReminderInterval, &cfg.ReminderInterval},
		{"REMINDER_LEAD_TIME", defaultReminderLeadTime, &cfg.ReminderLeadTime},
	}
	for _, v := range durations {
		if *v.dst, err = getDuration(v.key, v.def); err != nil {
			return nil, err
		}
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", cfg.LogFormat)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// DiscordEnabled reports whether reminders should be posted to Discord
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.DiscordReminderChannelID != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getPositiveInt(key string, defaultValue int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid %s value: must be positive, got %d", key, n)
	}
	return n, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s value: must be positive, got %s", key, d)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
