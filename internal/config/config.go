package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	defaultPort         = 3000
	defaultLogFile      = "logs/webhook.log"
	defaultMaxBodyBytes = 1 << 20
)

// Config contains runtime configuration required by the service.
type Config struct {
	Port            int
	LogLevel        string
	LogFile         string // empty disables the file sink
	DisplayLocation *time.Location
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads values from the environment, optionally seeded from a .env file.
// PORT never fails: unset or invalid values fall back to 3000.
func Load() (Config, error) {
	_ = godotenv.Load()

	ldr := &envLoader{}

	cfg := Config{
		Port:            parsePort(os.Getenv("PORT")),
		LogLevel:        ldr.getString("LOG_LEVEL", "info"),
		MaxBodyBytes:    int64(ldr.getInt("MAX_BODY_BYTES", defaultMaxBodyBytes)),
		ShutdownTimeout: time.Duration(ldr.getInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
	}

	// LOG_FILE set to an empty string turns the file sink off.
	cfg.LogFile = defaultLogFile
	if v, ok := os.LookupEnv("LOG_FILE"); ok {
		cfg.LogFile = strings.TrimSpace(v)
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		ldr.addError(fmt.Sprintf("LOG_LEVEL %q is not a valid level", cfg.LogLevel))
	}

	tz := ldr.getString("DISPLAY_TZ", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		ldr.addError(fmt.Sprintf("DISPLAY_TZ %q is not a valid time zone", tz))
		loc = time.UTC
	}
	cfg.DisplayLocation = loc

	if cfg.MaxBodyBytes <= 0 {
		ldr.addError("MAX_BODY_BYTES must be positive")
	}
	if cfg.ShutdownTimeout <= 0 {
		ldr.addError("SHUTDOWN_TIMEOUT_SECONDS must be positive")
	}

	if err := ldr.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parsePort(raw string) int {
	p, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || p <= 0 || p > 65535 {
		return defaultPort
	}
	return p
}

type envLoader struct {
	errs []string
}

func (l *envLoader) validate() error {
	if len(l.errs) == 0 {
		return nil
	}
	return errors.New("config validation failed: " + strings.Join(l.errs, "; "))
}

func (l *envLoader) getString(key, def string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	return val
}

func (l *envLoader) getInt(key string, def int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		l.addError(fmt.Sprintf("%s must be a valid integer", key))
		return def
	}
	return i
}

func (l *envLoader) addError(err string) {
	l.errs = append(l.errs, err)
}
