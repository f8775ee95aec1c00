package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Service names one of the deployable binaries.
type Service string

const (
	ServiceRoster       Service = "roster"
	ServiceActivities   Service = "activities"
	ServiceReservations Service = "reservations"
)

var defaultPorts = map[Service]string{
	ServiceRoster:       "5001",
	ServiceActivities:   "5002",
	ServiceReservations: "5003",
}

// Config holds runtime configuration values for a single service.
type Config struct {
	Service           Service
	AppName           string
	AppEnv            string
	AppPort           string
	DatabaseURL       string
	RosterURL         string
	ActivitiesURL     string
	ValidationTimeout time.Duration
	RedisURL          string
	ListCacheTTL      time.Duration
	NATSURL           string
	LogLevel          string
	LogFormat         string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values for the given service from environment
// variables and an optional .env file.
func Load(service Service) (Config, error) {
	_ = godotenv.Load()

	port, ok := defaultPorts[service]
	if !ok {
		return Config{}, fmt.Errorf("unknown service %q", service)
	}

	v := viper.New()
	v.SetEnvPrefix("SCHOOL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", string(service))
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", port)
	v.SetDefault("database.url", fmt.Sprintf("%s.db", service))
	v.SetDefault("roster.url", "http://roster:5001/api")
	v.SetDefault("validation.timeout", "3s")
	v.SetDefault("list_cache.ttl", "1m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	timeout, err := parsePositiveDuration(v.GetString("validation.timeout"), 3*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("invalid validation timeout: %w", err)
	}

	ttl, err := parsePositiveDuration(v.GetString("list_cache.ttl"), time.Minute)
	if err != nil {
		return Config{}, fmt.Errorf("invalid list cache ttl: %w", err)
	}

	cfg := Config{
		Service:           service,
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		DatabaseURL:       strings.TrimSpace(v.GetString("database.url")),
		RosterURL:         strings.TrimRight(strings.TrimSpace(v.GetString("roster.url")), "/"),
		ActivitiesURL:     strings.TrimRight(strings.TrimSpace(v.GetString("activities.url")), "/"),
		ValidationTimeout: timeout,
		RedisURL:          strings.TrimSpace(v.GetString("redis.url")),
		ListCacheTTL:      ttl,
		NATSURL:           strings.TrimSpace(v.GetString("nats.url")),
		LogLevel:          strings.ToLower(v.GetString("log.level")),
		LogFormat:         strings.ToLower(v.GetString("log.format")),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database url must be provided")
	}

	if service != ServiceRoster && cfg.RosterURL == "" {
		return Config{}, fmt.Errorf("roster url must be provided for the %s service", service)
	}

	return cfg, nil
}

func parsePositiveDuration(value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if parsed <= 0 {
		return fallback, nil
	}

	return parsed, nil
}
