package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	envPort                  = "PORT"
	envServerReadTimeout     = "SERVER_READ_TIMEOUT"
	envServerWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	envServerShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"
	envDBHost                = "DB_HOST"
	envDBPort                = "DB_PORT"
	envDBName                = "DB_NAME"
	envDBUser                = "DB_USER"
	envDBPassword            = "DB_PASSWORD"
	envDBSSLMode             = "DB_SSL_MODE"
	envDBMaxConns            = "DB_MAX_CONNS"
	envDBMinConns            = "DB_MIN_CONNS"
	envRedisURL              = "REDIS_URL"
	envStoreTimeout          = "REVOCATION_STORE_TIMEOUT"
	envLookupTimeout         = "CREDENTIAL_LOOKUP_TIMEOUT"
)

const (
	defaultServerPort         = "8080"
	defaultServerReadTimeout  = 10 * time.Second
	defaultServerWriteTimeout = 10 * time.Second
	defaultServerShutdown     = 10 * time.Second
	defaultDBHost             = "localhost"
	defaultDBPort             = 5432
	defaultDBName             = "studentauth"
	defaultDBUser             = "studentauth_app"
	defaultDBSSLMode          = "disable"
	defaultDBMaxConns         = 25
	defaultDBMinConns         = 5
	defaultRedisURL           = "redis://localhost:6379/0"
	defaultStoreTimeout       = 2 * time.Second
	defaultLookupTimeout      = 3 * time.Second

	errPortRequiredFmt         = "PORT must be set"
	errDBPasswordRequiredFmt   = "DB_PASSWORD must be set"
	errRedisURLRequiredFmt     = "REDIS_URL must be set"
	errInvalidConfigurationFmt = "invalid configuration: %w"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	URL string
}

// AuthConfig bounds the two calls in the request pipeline that cross a
// process boundary. The signing key is not configured here: it is generated
// once per process and held only in memory.
type AuthConfig struct {
	StoreTimeout  time.Duration
	LookupTimeout time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv(envPort, defaultServerPort),
			ReadTimeout:     getDurationEnv(envServerReadTimeout, defaultServerReadTimeout),
			WriteTimeout:    getDurationEnv(envServerWriteTimeout, defaultServerWriteTimeout),
			ShutdownTimeout: getDurationEnv(envServerShutdownTimeout, defaultServerShutdown),
		},
		Database: DatabaseConfig{
			Host:     getEnv(envDBHost, defaultDBHost),
			Port:     getIntEnv(envDBPort, defaultDBPort),
			Database: getEnv(envDBName, defaultDBName),
			User:     getEnv(envDBUser, defaultDBUser),
			Password: requireEnv(envDBPassword),
			SSLMode:  getEnv(envDBSSLMode, defaultDBSSLMode),
			MaxConns: getIntEnv(envDBMaxConns, defaultDBMaxConns),
			MinConns: getIntEnv(envDBMinConns, defaultDBMinConns),
		},
		Redis: RedisConfig{
			URL: getEnv(envRedisURL, defaultRedisURL),
		},
		Auth: AuthConfig{
			StoreTimeout:  getDurationEnv(envStoreTimeout, defaultStoreTimeout),
			LookupTimeout: getDurationEnv(envLookupTimeout, defaultLookupTimeout),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(errInvalidConfigurationFmt, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf(errPortRequiredFmt)
	}

	if c.Database.Password == "" {
		return fmt.Errorf(errDBPasswordRequiredFmt)
	}

	if c.Redis.URL == "" {
		return fmt.Errorf(errRedisURLRequiredFmt)
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func requireEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(messages.requiredEnvNotSet(key))
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
