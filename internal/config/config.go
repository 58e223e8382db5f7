package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	StorageDriverFile     = "file"
	StorageDriverDynamoDB = "dynamodb"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Backup  BackupConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// StorageConfig selects and parameterizes the collection blob store.
type StorageConfig struct {
	Driver    string
	FilePath  string
	Table     string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// BackupConfig holds the automatic JSON backup schedule.
type BackupConfig struct {
	Enabled      bool
	CronSchedule string
	Dir          string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from the
		// environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Storage: StorageConfig{
			Driver:    getenvWithDefault("STORAGE_DRIVER", StorageDriverFile),
			FilePath:  getenvWithDefault("STORAGE_PATH", "data/controlserv_servicos.json"),
			Table:     getenvWithDefault("SERVICES_TABLE", "servicos"),
			Region:    getenvWithDefault("AWS_REGION", "us-east-1"),
			Endpoint:  os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKey: getenvWithDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretKey: getenvWithDefault("AWS_SECRET_ACCESS_KEY", "local"),
		},
		Backup: BackupConfig{
			Enabled:      getenvWithDefault("BACKUP_ENABLED", "false") == "true",
			CronSchedule: getenvWithDefault("BACKUP_CRON_SCHEDULE", "0 3 * * *"),
			Dir:          getenvWithDefault("BACKUP_DIR", "backups"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.Storage.Driver {
	case StorageDriverFile:
		if c.Storage.FilePath == "" {
			return errors.New("STORAGE_PATH must be provided for the file driver")
		}
	case StorageDriverDynamoDB:
		if c.Storage.Table == "" {
			return errors.New("SERVICES_TABLE must be provided for the dynamodb driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.Backup.Enabled {
		if c.Backup.CronSchedule == "" {
			return errors.New("BACKUP_CRON_SCHEDULE must be provided when backups are enabled")
		}
		if c.Backup.Dir == "" {
			return errors.New("BACKUP_DIR must be provided when backups are enabled")
		}
	}
	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
