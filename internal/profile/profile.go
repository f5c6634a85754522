package profile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// Profile is the configuration to start main server.
type Profile struct {
	// Mode can be "prod" or "dev" or "demo"
	Mode string
	// Addr is the binding address for server
	Addr string
	// Port is the binding port for server
	Port int
	// Data is the data directory
	Data string
	// DSN points to where seekr stores its own data
	DSN string
	// Driver is the database driver (memory, sqlite, postgres or badger)
	Driver string
	// Version is the current version of server
	Version string
	// JWTSecret signs session tokens
	JWTSecret string

	// AI configuration
	AIEnabled       bool   // SEEKR_AI_ENABLED
	AIOpenAIAPIKey  string // SEEKR_AI_OPENAI_API_KEY
	AIOpenAIBaseURL string // SEEKR_AI_OPENAI_BASE_URL (default: https://api.openai.com/v1)
	AIModel         string // SEEKR_AI_MODEL (default: gpt-4o-mini)
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// IsAIEnabled returns true if AI is enabled and an API key is configured.
func (p *Profile) IsAIEnabled() bool {
	return p.AIEnabled && p.AIOpenAIAPIKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FromEnv loads AI and auth configuration from SEEKR_* environment variables.
func (p *Profile) FromEnv() {
	p.AIEnabled = os.Getenv("SEEKR_AI_ENABLED") == "true"
	p.AIOpenAIAPIKey = os.Getenv("SEEKR_AI_OPENAI_API_KEY")
	p.AIOpenAIBaseURL = getEnvOrDefault("SEEKR_AI_OPENAI_BASE_URL", "https://api.openai.com/v1")
	p.AIModel = getEnvOrDefault("SEEKR_AI_MODEL", "gpt-4o-mini")
	if p.JWTSecret == "" {
		p.JWTSecret = os.Getenv("SEEKR_JWT_SECRET")
	}
}

func checkDataDir(dataDir string) (string, error) {
	// Convert to absolute path if relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		relativeDir := filepath.Join(filepath.Dir(os.Args[0]), dataDir)
		absDir, err := filepath.Abs(relativeDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case user supplies
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err != nil {
		return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
	}
	return dataDir, nil
}

func (p *Profile) Validate() error {
	if p.Mode != "demo" && p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "demo"
	}

	if p.Driver == "" {
		p.Driver = "memory"
	}

	// The memory driver holds everything in process.
	if p.Driver == "memory" {
		return nil
	}

	if p.Mode == "prod" && p.Data == "" {
		if runtime.GOOS == "windows" {
			p.Data = filepath.Join(os.Getenv("ProgramData"), "seekr")
			if _, err := os.Stat(p.Data); os.IsNotExist(err) {
				if err := os.MkdirAll(p.Data, 0770); err != nil {
					slog.Error("failed to create data directory", slog.String("data", p.Data), slog.String("error", err.Error()))
					return err
				}
			}
		} else {
			p.Data = "/var/opt/seekr"
		}
	}

	dataDir, err := checkDataDir(p.Data)
	if err != nil {
		slog.Error("failed to check data directory", slog.String("data", dataDir), slog.String("error", err.Error()))
		return err
	}
	p.Data = dataDir

	if p.Driver == "sqlite" && p.DSN == "" {
		dbFile := fmt.Sprintf("seekr_%s.db", p.Mode)
		p.DSN = filepath.Join(dataDir, dbFile)
	}
	if p.Driver == "badger" && p.DSN == "" {
		p.DSN = filepath.Join(dataDir, "badger")
	}
	if p.Driver == "postgres" && p.DSN == "" {
		return errors.New("dsn is required for postgres driver")
	}

	return nil
}
