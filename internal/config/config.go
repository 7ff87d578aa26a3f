package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Logger   LoggerConfig
	Metrics  MetricsConfig
	Catalog  CatalogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled bool
	URL     string
	TTL     time.Duration
}

type CORSConfig struct {
	AllowedOrigins string
}

type LoggerConfig struct {
	Level  string
	Format string
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

// CatalogConfig lists the values accepted for each categorical request field.
type CatalogConfig struct {
	Models       []string
	Towns        []string
	FlatModels   []string
	StoreyRanges []string
	LeaseDateMin time.Time
	LeaseDateMax time.Time
}

const dateLayout = "2006-01-02"

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "resale")
	v.SetDefault("DB_PASSWORD", "resale_dev_password")
	v.SetDefault("DB_NAME", "resale")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("REDIS_TTL", "1h")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("METRICS_PATH", "/metrics")
	v.SetDefault("CATALOG_MODELS", DefaultModels)
	v.SetDefault("CATALOG_TOWNS", DefaultTowns)
	v.SetDefault("CATALOG_FLAT_MODELS", DefaultFlatModels)
	v.SetDefault("CATALOG_STOREY_RANGES", DefaultStoreyRanges())
	v.SetDefault("CATALOG_LEASE_DATE_MIN", "1960-01-01")
	v.SetDefault("CATALOG_LEASE_DATE_MAX", "2022-02-01")

	// Env
	v.AutomaticEnv()

	// Optional file, mainly for the catalog lists
	if path := v.GetString("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	lifetime, err := time.ParseDuration(v.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		lifetime = 30 * time.Minute
	}
	ttl, err := time.ParseDuration(v.GetString("REDIS_TTL"))
	if err != nil {
		ttl = time.Hour
	}

	leaseMin, err := time.Parse(dateLayout, v.GetString("CATALOG_LEASE_DATE_MIN"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_LEASE_DATE_MIN: %w", err)
	}
	leaseMax, err := time.Parse(dateLayout, v.GetString("CATALOG_LEASE_DATE_MAX"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_LEASE_DATE_MAX: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: lifetime,
		},
		Redis: RedisConfig{
			Enabled: v.GetBool("REDIS_ENABLED"),
			URL:     v.GetString("REDIS_URL"),
			TTL:     ttl,
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
			Path:    v.GetString("METRICS_PATH"),
		},
		Catalog: CatalogConfig{
			Models:       stringList(v, "CATALOG_MODELS"),
			Towns:        stringList(v, "CATALOG_TOWNS"),
			FlatModels:   stringList(v, "CATALOG_FLAT_MODELS"),
			StoreyRanges: stringList(v, "CATALOG_STOREY_RANGES"),
			LeaseDateMin: leaseMin,
			LeaseDateMax: leaseMax,
		},
	}

	return cfg, nil
}

// stringList reads a list from a file (YAML/JSON sequence) or from an env var
// as comma-separated values. Viper's own slice parsing splits on whitespace,
// which breaks names such as "ANG MO KIO".
func stringList(v *viper.Viper, key string) []string {
	var raw []string
	switch val := v.Get(key).(type) {
	case string:
		raw = strings.Split(val, ",")
	case []string:
		raw = val
	case []interface{}:
		for _, item := range val {
			raw = append(raw, fmt.Sprint(item))
		}
	}

	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
