package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Cache Cache

	Telemetry Telemetry

	Geocoder Geocoder

	Jobs Jobs
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,numeric"`

	ReadHeaderTimeout time.Duration `validate:"gte=0"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`

	// AssignmentsTopic carries delivery assignment requests into the service.
	AssignmentsTopic string `validate:"required"`
	// EventsTopic receives order and delivery domain events.
	EventsTopic string `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	ConnectAttempts int `validate:"gte=1"`
}

// DSN is the lib/pq keyword form of the connection settings.
func (p Postgres) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

// URL is the postgres:// form used by migrations.
func (p Postgres) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
		Path:     p.DBName,
		RawQuery: "sslmode=" + p.SSLMode,
	}
	return u.String()
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Telemetry struct {
	Enabled        bool
	Endpoint       string `validate:"required_if=Enabled true"`
	ServiceName    string `validate:"required"`
	ServiceVersion string
}

// Geocoder points at a Nominatim compatible reverse geocoding API. An empty
// URL disables location resolution.
type Geocoder struct {
	URL       string        `validate:"omitempty,url"`
	UserAgent string        `validate:"required_with=URL"`
	Timeout   time.Duration `validate:"gt=0"`
}

type Jobs struct {
	// OverdueSchedule is a cron spec with a seconds field.
	OverdueSchedule string `validate:"required"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host:              env("HOST", "localhost"),
			Port:              env("PORT", "8080"),
			ReadHeaderTimeout: envDuration("HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID:          env("KAFKA_GROUP_ID", "delivery-commerce-service"),
			Brokers:          strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			AssignmentsTopic: env("KAFKA_ASSIGNMENTS_TOPIC", "delivery-assignments"),
			EventsTopic:      env("KAFKA_EVENTS_TOPIC", "delivery-events"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "delivery"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
			ConnectAttempts: envInt("POSTGRES_CONNECT_ATTEMPTS", 5),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 512),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Telemetry: Telemetry{
			Enabled:        envBool("OTEL_ENABLED", false),
			Endpoint:       env("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			ServiceName:    env("OTEL_SERVICE_NAME", "delivery-commerce-service"),
			ServiceVersion: env("SERVICE_VERSION", "dev"),
		},

		Geocoder: Geocoder{
			URL:       env("GEOCODER_URL", ""),
			UserAgent: env("GEOCODER_USER_AGENT", "delivery-commerce-service"),
			Timeout:   envDuration("GEOCODER_TIMEOUT", 5*time.Second),
		},

		Jobs: Jobs{
			OverdueSchedule: env("OVERDUE_DELIVERIES_SCHEDULE", "0 * * * * *"),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
