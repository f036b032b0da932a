package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pageza/dapur-ai/backend/internal/locale"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks every field and reports all problems at once.
// The Gemini credential is intentionally not checked here.
func ValidateConfig(cfg *Config) error {
	var errs []string
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg}.Error())
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		add("SERVER_PORT", fmt.Sprintf("invalid port %q", cfg.ServerPort))
	}

	for _, f := range []struct{ field, raw string }{
		{"GEMINI_API_URL", cfg.GeminiAPIURL},
		{"PUBLIC_URL", cfg.PublicURL},
	} {
		u, err := url.Parse(f.raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			add(f.field, fmt.Sprintf("invalid URL %q", f.raw))
		}
	}

	if strings.TrimSpace(cfg.GeminiModel) == "" {
		add("GEMINI_MODEL", "must not be empty")
	}

	if cfg.UpstreamTimeout < 0 {
		add("UPSTREAM_TIMEOUT", "must not be negative")
	}

	if _, err := locale.Parse(string(cfg.DefaultLocale)); err != nil {
		add("DEFAULT_LOCALE", err.Error())
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		add("CORS_ALLOWED_ORIGINS", "at least one origin is required")
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		add("LOG_LEVEL", fmt.Sprintf("unknown level %q", cfg.LogLevel))
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		add("LOG_FORMAT", fmt.Sprintf("must be text or json, got %q", cfg.LogFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
