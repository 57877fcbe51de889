package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration,
// populated from environment variables.
type Config struct {
	App   AppConfig
	Mongo MongoConfig
	Redis RedisConfig
	MinIO MinIOConfig
	Jobs  JobConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type MongoConfig struct {
	URI            string // mongodb://localhost:27017
	Database       string
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type MinIOConfig struct {
	Endpoint      string // localhost:9000
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	PresignExpiry time.Duration // validity of issued upload tokens
}

type JobConfig struct {
	TrashRetentionDays int // soft-deleted posters older than this get purged
	SweepBatchSize     int // orphan comments removed per run
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Posterdeck API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Mongo: MongoConfig{
			URI:            getEnv("MONGO_URI", ""),
			Database:       getEnv("MONGO_DB", "posterdeck"),
			ConnectTimeout: time.Duration(getEnvInt("MONGO_CONNECT_TIMEOUT_SEC", 10)) * time.Second,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		MinIO: MinIOConfig{
			Endpoint:      getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey:     getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:     getEnv("MINIO_SECRET_KEY", ""),
			Bucket:        getEnv("MINIO_BUCKET", "posters"),
			UseSSL:        getEnvBool("MINIO_USE_SSL", false),
			PresignExpiry: time.Duration(getEnvInt("MINIO_PRESIGN_EXPIRY_MIN", 15)) * time.Minute,
		},
		Jobs: JobConfig{
			TrashRetentionDays: getEnvInt("TRASH_RETENTION_DAYS", 30),
			SweepBatchSize:     getEnvInt("SWEEP_BATCH_SIZE", 500),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations the application cannot run with.
// A missing store connection string or storage credentials must fail
// startup instead of surfacing later as a confusing runtime error.
func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGO_URI must be set")
	}
	if c.MinIO.AccessKey == "" || c.MinIO.SecretKey == "" {
		return fmt.Errorf("MINIO_ACCESS_KEY and MINIO_SECRET_KEY must be set")
	}
	if c.Jobs.TrashRetentionDays < 1 {
		return fmt.Errorf("TRASH_RETENTION_DAYS must be at least 1")
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

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
