package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/agencyhub-backend/internal/data/db"
	"github.com/yungbote/agencyhub-backend/internal/observability"
	"github.com/yungbote/agencyhub-backend/internal/platform/envutil"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
	"github.com/yungbote/agencyhub-backend/internal/services"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	Port    string
	LogMode string

	StoreDriver string
	Postgres    db.PostgresConfig
	SQLitePath  string

	JWTSecretKey string
	CORSOrigins  []string

	DashboardLocation    *time.Location
	ActivityDefaultLimit int
	Money                services.MoneyFormat

	Otel observability.OtelConfig
}

func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		Port:        envutil.String("PORT", "8080"),
		LogMode:     envutil.String("LOG_MODE", "development"),
		StoreDriver: strings.ToLower(envutil.String("STORE_DRIVER", StorePostgres)),
		Postgres: db.PostgresConfig{
			Host:     envutil.String("POSTGRES_HOST", "localhost"),
			Port:     envutil.String("POSTGRES_PORT", "5432"),
			User:     envutil.String("POSTGRES_USER", "postgres"),
			Password: envutil.String("POSTGRES_PASSWORD", ""),
			Name:     envutil.String("POSTGRES_NAME", "agencyhub"),
			SSLMode:  envutil.String("POSTGRES_SSLMODE", "disable"),
		},
		SQLitePath:           envutil.String("SQLITE_PATH", "agencyhub.db"),
		JWTSecretKey:         envutil.String("JWT_SECRET_KEY", ""),
		CORSOrigins:          envutil.List("CORS_ALLOWED_ORIGINS", nil),
		ActivityDefaultLimit: envutil.Int("ACTIVITY_DEFAULT_LIMIT", 0),
		Money: services.MoneyFormat{
			Locale: envutil.String("MONEY_LOCALE", "en-US"),
			Symbol: envutil.String("CURRENCY_SYMBOL", "$"),
		},
		Otel: observability.OtelConfig{
			Enabled:      envutil.Bool("OTEL_ENABLED", false),
			ServiceName:  envutil.String("OTEL_SERVICE_NAME", "agencyhub"),
			Environment:  envutil.String("APP_ENV", "development"),
			Version:      envutil.String("APP_VERSION", ""),
			Exporter:     envutil.String("OTEL_EXPORTER", "otlp"),
			Endpoint:     envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:      observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "")),
			Insecure:     envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio:  envutil.Float("OTEL_SAMPLE_RATIO", 0.1),
			BatchTimeout: envutil.Duration("OTEL_BATCH_TIMEOUT", 5*time.Second),
		},
	}

	switch cfg.StoreDriver {
	case StoreMemory, StorePostgres, StoreSQLite:
	default:
		return cfg, fmt.Errorf("unknown STORE_DRIVER %q (want memory, postgres or sqlite)", cfg.StoreDriver)
	}

	tz := envutil.String("DASHBOARD_TIMEZONE", "")
	cfg.DashboardLocation = time.Local
	if tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return cfg, fmt.Errorf("DASHBOARD_TIMEZONE: %w", err)
		}
		cfg.DashboardLocation = loc
	}

	if cfg.JWTSecretKey == "" {
		log.Warn("JWT_SECRET_KEY is empty; every API request will be rejected")
	}
	return cfg, nil
}
