package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/founditapp/foundit/internal/notify"
)

// Store backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendDynamo = "dynamo"
)

// Config holds everything read from the environment. CLI flags may override
// Addr and the path fields.
type Config struct {
	Addr      string
	Backend   string
	DataDir   string // file backend
	DBPath    string // sqlite backend
	AWSRegion string // dynamo backend
	TableName string // dynamo backend table prefix
	UploadDir string
	PublicDir string

	AdminUser     string
	AdminPassword string // seed only; stored hashed on first run
	JWTSecret     string

	SMTP notify.Config
}

// Load reads configuration from the environment, first loading envFile if it
// exists (missing is fine, env vars may come from the process).
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	cfg := &Config{
		Addr:      getenv("FOUNDIT_ADDR", ":8080"),
		Backend:   getenv("FOUNDIT_STORE", BackendFile),
		DataDir:   getenv("FOUNDIT_DATA_DIR", "data"),
		DBPath:    getenv("FOUNDIT_DB_PATH", "foundit.sqlite3"),
		AWSRegion: getenv("FOUNDIT_AWS_REGION", "us-east-1"),
		TableName: getenv("FOUNDIT_DYNAMO_PREFIX", "foundit"),
		UploadDir: getenv("FOUNDIT_UPLOAD_DIR", "public/uploads"),
		PublicDir: getenv("FOUNDIT_PUBLIC_DIR", "public"),

		AdminUser:     getenv("FOUNDIT_ADMIN_USER", "admin"),
		AdminPassword: os.Getenv("FOUNDIT_ADMIN_PASSWORD"),
		JWTSecret:     os.Getenv("FOUNDIT_JWT_SECRET"),

		SMTP: notify.Config{
			Enabled:  boolenv("FOUNDIT_SMTP_ENABLED"),
			Host:     os.Getenv("FOUNDIT_SMTP_HOST"),
			Port:     intenv("FOUNDIT_SMTP_PORT", 587),
			Username: os.Getenv("FOUNDIT_SMTP_USER"),
			Password: os.Getenv("FOUNDIT_SMTP_PASSWORD"),
			From:     os.Getenv("FOUNDIT_SMTP_FROM"),
			SSL:      boolenv("FOUNDIT_SMTP_SSL"),
		},
	}

	switch cfg.Backend {
	case BackendFile, BackendSQLite, BackendDynamo:
	default:
		return nil, fmt.Errorf("unknown store backend %q (want file, sqlite or dynamo)", cfg.Backend)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func boolenv(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func intenv(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
