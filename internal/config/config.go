// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers understood by storage.New.
const (
	DriverS3    = "s3"
	DriverMinio = "minio"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port   string
	AppEnv string

	// HTTP server timeouts. Zero disables the timeout; read and write default
	// to zero so a slow upload always gets its 200 or 500 answer.
	ServerReadHeaderTimeout time.Duration
	ServerReadTimeout       time.Duration
	ServerWriteTimeout      time.Duration
	ServerIdleTimeout       time.Duration

	// Object storage. Region and bucket default to the values the service has
	// always shipped with; every field can be overridden from the environment.
	StorageDriver       string
	StorageRegion       string
	StorageBucket       string
	StorageEndpoint     string // empty means the provider's default endpoint (AWS only)
	StorageAccessKey    string // optional, tried before ambient credentials
	StorageSecretKey    string
	StorageUseSSL       bool // minio only, and only for "host:port" endpoints; the s3 driver takes the scheme from StorageEndpoint
	StorageUsePathStyle bool
	StorageEnsureBucket bool // both drivers: check the bucket at startup and create it if missing
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),

		ServerReadHeaderTimeout: getDuration("SERVER_READ_HEADER_TIMEOUT", 10*time.Second),
		ServerReadTimeout:       getDuration("SERVER_READ_TIMEOUT", 0),
		ServerWriteTimeout:      getDuration("SERVER_WRITE_TIMEOUT", 0),
		ServerIdleTimeout:       getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),

		StorageDriver:       getEnv("STORAGE_DRIVER", DriverS3),
		StorageRegion:       getEnv("STORAGE_REGION", "us-west-1"),
		StorageBucket:       getEnv("STORAGE_BUCKET", "your-flask-uploads"),
		StorageEndpoint:     getEnv("STORAGE_ENDPOINT", ""),
		StorageAccessKey:    getEnv("STORAGE_ACCESS_KEY", ""),
		StorageSecretKey:    getEnv("STORAGE_SECRET_KEY", ""),
		StorageUseSSL:       getEnv("STORAGE_USE_SSL", "true") == "true",
		StorageUsePathStyle: getEnv("STORAGE_USE_PATH_STYLE", "false") == "true",
		StorageEnsureBucket: getEnv("STORAGE_ENSURE_BUCKET", "false") == "true",
	}
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// HasStaticCredentials reports whether an explicit access key pair is configured.
func (c *Config) HasStaticCredentials() bool {
	return c.StorageAccessKey != "" && c.StorageSecretKey != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid duration %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
