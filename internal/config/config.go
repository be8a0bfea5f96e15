package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings required by the application.
type Config struct {
	AppName     string
	Environment string
	HTTP        HTTPConfig
	Store       StoreConfig
	Session     SessionConfig
	Advisor     AdvisorConfig
	Maintenance MaintenanceConfig
	Context     ContextConfig
	Logger      LoggerConfig
}

type HTTPConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	MaxBodySize  int
}

// StoreConfig locates the single-file content store.
type StoreConfig struct {
	Path   string
	Bucket string
}

// SessionConfig controls admin token issuance. An empty secret means tokens
// are signed with a boot-time random key and die with the process.
type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

type AdvisorConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// MaintenanceConfig drives the scheduled store compaction job.
type MaintenanceConfig struct {
	Enabled  bool
	Schedule string
}

type ContextConfig struct {
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from environment variables (optionally .env)
// and applies sane defaults so the service can boot in any environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     getString("APP_NAME", "soilhealth-portal"),
		Environment: getString("APP_ENV", "development"),
		HTTP: HTTPConfig{
			Host:         getString("SERVER_HOST", "0.0.0.0"),
			Port:         getString("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
			// Inline uploads travel as base64 JSON, so the body limit has to
			// accommodate documents a few megabytes large.
			MaxBodySize: getInt("SERVER_MAX_BODY_SIZE", 32<<20),
		},
		Store: StoreConfig{
			Path:   getString("BOLTDB_PATH", "./data/content.db"),
			Bucket: getString("BOLTDB_BUCKET", "site"),
		},
		Session: SessionConfig{
			Secret: os.Getenv("SESSION_SECRET"),
			TTL:    getDuration("SESSION_TTL", 12*time.Hour),
		},
		Advisor: AdvisorConfig{
			APIKey:  os.Getenv("GEMINI_API_KEY"),
			Model:   getString("GEMINI_MODEL", "gemini-3-flash-preview"),
			BaseURL: getString("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			Timeout: getDuration("GEMINI_TIMEOUT", 30*time.Second),
		},
		Maintenance: MaintenanceConfig{
			Enabled:  getBool("MAINTENANCE_ENABLED", true),
			Schedule: getString("MAINTENANCE_SCHEDULE", "0 3 * * *"),
		},
		Context: ContextConfig{
			RequestTimeout:  getDuration("REQUEST_TIMEOUT_SECONDS", 30*time.Second),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "json"),
		},
	}

	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

// Address returns the HTTP listen address for the fasthttp server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.HTTP.Host, c.HTTP.Port)
}
