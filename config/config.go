package config

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/linesmerrill/mergington-announcements-api/logging"
	"github.com/linesmerrill/mergington-announcements-api/models"
)

// DefaultQueryTimeout bounds a single database call when QUERY_TIMEOUT is unset
const DefaultQueryTimeout = 10 * time.Second

// Config holds the project config values
type Config struct {
	URL          string
	DatabaseName string
	BaseURL      string
	Port         string
	Env          string
	SeedTeachers bool
	QueryTimeout time.Duration
}

// New sets up all config related services
func New() *Config {
	// a missing .env file is normal outside local development
	_ = godotenv.Load()

	env := os.Getenv("ENV")

	//setup zap logger and replace default logger
	logger, err := logging.New(env)
	if err != nil {
		logger = zap.NewExample()
	}
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:          os.Getenv("DB_URI"),
		DatabaseName: os.Getenv("DB_NAME"),
		BaseURL:      os.Getenv("BASE_URL"),
		Port:         os.Getenv("PORT"),
		Env:          env,
		SeedTeachers: parseBool("SEED_TEACHERS"),
		QueryTimeout: parseDuration("QUERY_TIMEOUT", DefaultQueryTimeout),
	}
}

func parseBool(key string) bool {
	v := os.Getenv(key)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		zap.S().Warnw("ignoring invalid boolean", "key", key, "value", v)
		return false
	}
	return b
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		zap.S().Warnw("ignoring invalid duration", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

// ErrorStatus logs err and writes message as the response detail with the
// given status code. err is never written to the client.
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	if err != nil {
		zap.S().Errorw(message, "status", httpStatusCode, "error", err)
	} else {
		zap.S().Debugw(message, "status", httpStatusCode)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Detail: message})
}
