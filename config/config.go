package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pageza/dapur-ai/backend/internal/locale"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerHost string
	ServerPort string
	PublicURL  string

	// Upstream (Gemini) configuration
	GeminiAPIURL    string
	GeminiModel     string
	UpstreamTimeout time.Duration

	DefaultLocale      locale.Locale
	CORSAllowedOrigins []string

	// Logging configuration
	LogLevel  string
	LogFormat string
}

const (
	apiKeyEnv       = "GEMINI_API_KEY"
	apiKeyFileEnv   = "GEMINI_API_KEY_FILE"
	apiKeySecret    = "gemini_api_key"
	defaultSecrets  = "/run/secrets"
	defaultEnvFile  = ".env"
	defaultPort     = "8080"
	defaultHost     = "0.0.0.0"
	defaultAPIURL   = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel    = "gemini-2.0-flash"
	defaultOrigins  = "http://localhost:5173"
	defaultLogLevel = "info"
)

// LoadConfig builds a Config from the environment, an optional .env file in
// development and Docker secrets.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	if env == Development || env == Test {
		// A missing .env is fine; everything has a default or comes from the environment.
		if err := godotenv.Load(envFile()); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile(), err)
		}
	}

	v := newViper()
	cfg := &Config{
		Environment:        env,
		ServerHost:         v.GetString("SERVER_HOST"),
		ServerPort:         v.GetString("SERVER_PORT"),
		PublicURL:          v.GetString("PUBLIC_URL"),
		GeminiAPIURL:       strings.TrimRight(v.GetString("GEMINI_API_URL"), "/"),
		GeminiModel:        v.GetString("GEMINI_MODEL"),
		UpstreamTimeout:    v.GetDuration("UPSTREAM_TIMEOUT"),
		DefaultLocale:      locale.Locale(strings.ToLower(v.GetString("DEFAULT_LOCALE"))),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		LogLevel:           strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:          strings.ToLower(v.GetString("LOG_FORMAT")),
	}

	if cfg.PublicURL == "" {
		cfg.PublicURL = "http://127.0.0.1:" + cfg.ServerPort
	}
	if l, err := locale.Parse(string(cfg.DefaultLocale)); err == nil {
		cfg.DefaultLocale = l
	}
	if cfg.LogFormat == "" {
		if env == Production {
			cfg.LogFormat = "json"
		} else {
			cfg.LogFormat = "text"
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("SERVER_HOST", defaultHost)
	v.SetDefault("SERVER_PORT", defaultPort)
	v.SetDefault("PUBLIC_URL", "")
	v.SetDefault("GEMINI_API_URL", defaultAPIURL)
	v.SetDefault("GEMINI_MODEL", defaultModel)
	v.SetDefault("UPSTREAM_TIMEOUT", "0s")
	v.SetDefault("DEFAULT_LOCALE", string(locale.Default))
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultOrigins)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("LOG_FORMAT", "")
	v.AutomaticEnv()
	return v
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// APIKey returns the Gemini credential. It is read on every call so that a
// missing key is reported per request rather than at startup. Lookup order:
// GEMINI_API_KEY, the file named by GEMINI_API_KEY_FILE, the gemini_api_key
// Docker secret.
func APIKey() string {
	if key := strings.TrimSpace(os.Getenv(apiKeyEnv)); key != "" {
		return key
	}
	if path := os.Getenv(apiKeyFileEnv); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if key := strings.TrimSpace(string(data)); key != "" {
				return key
			}
		}
	}
	return readSecret(apiKeySecret)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = defaultSecrets
	}
	data, err := os.ReadFile(filepath.Join(secretsDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func envFile() string {
	if f := os.Getenv("ENV_FILE"); f != "" {
		return f
	}
	return defaultEnvFile
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
