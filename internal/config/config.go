package config

import (
	"os"
	"strconv"
	"time"
)

// Store backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Storage backends.
const (
	StorageLocal = "local"
	StorageMinIO = "minio"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// StorageConfig selects and parameterizes the document storage backend.
type StorageConfig struct {
	Backend  string
	LocalDir string
	MinIO    MinIOConfig
}

// SessionConfig holds session cookie settings.
type SessionConfig struct {
	CookieName   string
	TTL          time.Duration
	SecureCookie bool
}

// UploadConfig constrains the document upload pipeline.
type UploadConfig struct {
	MaxSizeBytes int64
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not
// hardcoded.
type AppConfig struct {
	Port         string
	StoreBackend string
	Database     DatabaseConfig
	Storage      StorageConfig
	Session      SessionConfig
	Upload       UploadConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take
// precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:         getEnv("PORT", "8080"), // default only for non-sensitive value
		StoreBackend: getEnv("STORE_BACKEND", StoreMemory),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Storage: StorageConfig{
			Backend:  getEnv("STORAGE_BACKEND", StorageLocal),
			LocalDir: getEnv("STORAGE_LOCAL_DIR", "uploads"),
			MinIO: MinIOConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", ""),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", ""),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
		},
		Session: SessionConfig{
			CookieName:   getEnv("SESSION_COOKIE_NAME", "rta_session"),
			TTL:          time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
			SecureCookie: getEnvBool("SESSION_COOKIE_SECURE", false),
		},
		Upload: UploadConfig{
			MaxSizeBytes: int64(getEnvInt("UPLOAD_MAX_SIZE_MB", 10)) << 20,
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
