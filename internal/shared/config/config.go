package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"resume-builder/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port                 string        `validate:"required,numeric"`
	Env                  string        `validate:"oneof=dev local staging production"`
	DatabaseURL          string        `validate:"omitempty,url"`
	CORSAllowOrigin      []string      `validate:"dive,required"`
	SessionTTL           time.Duration `validate:"min=1m"`
	SessionSweepInterval time.Duration `validate:"min=1s"`
	CookieSecure         bool
	ChromePath           string
	RenderTimeout        time.Duration `validate:"min=1s"`
	LogFormat            string        `validate:"oneof=json text"`
	LogLevel             string        `validate:"oneof=debug info warn error"`
	RateLimitRPS         float64       `validate:"gte=0"`
	RateLimitBurst       int           `validate:"gte=0"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	logFormat := "json"
	if env == "dev" || env == "local" {
		logFormat = "text"
	}

	return Config{
		Port:                 strings.TrimPrefix(getEnv("PORT", "8080"), ":"),
		Env:                  env,
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		CORSAllowOrigin:      splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		SessionTTL:           getDuration("SESSION_TTL", 2*time.Hour),
		SessionSweepInterval: getDuration("SESSION_SWEEP_INTERVAL", 5*time.Minute),
		CookieSecure:         getBool("COOKIE_SECURE", env == "production"),
		ChromePath:           getEnv("CHROME_PATH", ""),
		RenderTimeout:        getDuration("RENDER_TIMEOUT", 30*time.Second),
		LogFormat:            strings.ToLower(getEnv("LOG_FORMAT", logFormat)),
		LogLevel:             strings.ToLower(getEnv("LOG_LEVEL", "info")),
		RateLimitRPS:         getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:       getInt("RATE_LIMIT_BURST", 20),
	}
}

var validate = validator.New()

// Validate reports every invalid field in one error.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// loadEnvFiles loads KEY=VALUE pairs from the given files if they exist.
// Variables already present in the environment win.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			telemetry.Warn("config.env_file_invalid", map[string]any{"path": path, "error": err.Error()})
		}
	}
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		telemetry.Warn("config.invalid_duration", map[string]any{"key": key, "value": raw})
		return def
	}
	return val
}

func getBool(key string, def bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		telemetry.Warn("config.invalid_bool", map[string]any{"key": key, "value": raw})
		return def
	}
	return val
}

func getInt(key string, def int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		telemetry.Warn("config.invalid_int", map[string]any{"key": key, "value": raw})
		return def
	}
	return val
}

func getFloat(key string, def float64) float64 {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		telemetry.Warn("config.invalid_float", map[string]any{"key": key, "value": raw})
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
