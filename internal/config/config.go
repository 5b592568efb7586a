package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends for the session store
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Session   SessionConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Providers ProvidersConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	// Required turns on the Auth middleware for the dashboard API
	Required bool
}

type SessionConfig struct {
	Storage string // memory, postgres or redis
}

type DatabaseConfig struct {
	URL string
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type KafkaConfig struct {
	Brokers        []string
	LocationsTopic string
}

// Enabled reports whether location events should be published
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type ProvidersConfig struct {
	FetchDelay   time.Duration
	LocationTick time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
	File   string
}

// Load reads .env (if present) and the process environment
func Load() (*Config, error) {
	// .env is optional, the process environment always wins
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("HOST", "0.0.0.0"),
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("APP_JWT_SECRET", ""),
			TokenTTL:  getEnvAsDuration("APP_TOKEN_TTL", 7*24*time.Hour),
			Required:  getEnvAsBool("AUTH_REQUIRED", false),
		},
		Session: SessionConfig{
			Storage: strings.ToLower(getEnv("SESSION_STORAGE", StorageMemory)),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvAsInt("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "fleet:"),
		},
		Kafka: KafkaConfig{
			Brokers:        parseList(getEnv("KAFKA_BROKERS", "")),
			LocationsTopic: getEnv("KAFKA_TOPIC_LOCATIONS", "truck-locations"),
		},
		Providers: ProvidersConfig{
			FetchDelay:   getEnvAsDuration("FETCH_DELAY", 500*time.Millisecond),
			LocationTick: getEnvAsDuration("LOCATION_TICK", 10*time.Second),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
			File:   getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("APP_JWT_SECRET is required")
	}
	switch c.Session.Storage {
	case StorageMemory, StorageRedis:
	case StoragePostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required when SESSION_STORAGE=postgres")
		}
	default:
		return fmt.Errorf("unknown SESSION_STORAGE %q", c.Session.Storage)
	}
	if c.Providers.LocationTick <= 0 {
		return fmt.Errorf("LOCATION_TICK must be positive")
	}
	if c.Providers.FetchDelay < 0 {
		return fmt.Errorf("FETCH_DELAY must not be negative")
	}
	return nil
}

// Addr is the listen address of the HTTP server
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
