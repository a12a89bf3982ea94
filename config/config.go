package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const EnvPrefix = "STOREFRONT"

// Config is read from STOREFRONT_<SECTION>_<TAG> first and falls back to the
// bare tag name, so DB_HOST, REDIS_HOST and KAFKA_BROKER keep working.
type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Staff     StaffConfig
	Concierge ConciergeConfig
	Calls     CallsConfig
	Session   SessionConfig
}

type AppConfig struct {
	ServiceName   string `envconfig:"SERVICE_NAME" default:"storefront-svc"`
	Port          string `envconfig:"PORT" default:"8081"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	Timezone      string `envconfig:"TIMEZONE" default:"Asia/Kolkata"`
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:8080"`
}

// Location resolves the configured timezone, falling back to UTC.
func (a AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type DBConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	Name            string        `envconfig:"DB_NAME" default:"restrofi"`
	User            string        `envconfig:"DB_USER" default:"postgres"`
	Password        string        `envconfig:"DB_PASSWORD"`
	SSLMode         string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"1h"`
}

func (d DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Host    string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port    string        `envconfig:"REDIS_PORT" default:"6379"`
	MenuTTL time.Duration `envconfig:"REDIS_MENU_TTL" default:"10m"`
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

type KafkaConfig struct {
	Broker  string `envconfig:"KAFKA_BROKER" default:"localhost:9092"`
	Topic   string `envconfig:"KAFKA_TOPIC" default:"storefront.orders"`
	GroupID string `envconfig:"KAFKA_GROUP_ID" default:"agg-svc-consumer"`
}

type StaffConfig struct {
	PIN            string        `envconfig:"STAFF_PIN" required:"true"`
	TokenSecret    string        `envconfig:"STAFF_TOKEN_SECRET" required:"true"`
	TokenTTL       time.Duration `envconfig:"STAFF_TOKEN_TTL" default:"8h"`
	AttemptLimit   int           `envconfig:"STAFF_ATTEMPT_LIMIT" default:"5"`
	AttemptWindow  time.Duration `envconfig:"STAFF_ATTEMPT_WINDOW" default:"1m"`
	ErrorResetWait time.Duration `envconfig:"STAFF_ERROR_RESET_WAIT" default:"300ms"`
}

type ConciergeConfig struct {
	APIKey   string `envconfig:"CONCIERGE_API_KEY"`
	Model    string `envconfig:"CONCIERGE_MODEL" default:"gemini-2.5-flash"`
	Endpoint string `envconfig:"CONCIERGE_ENDPOINT" default:"https://generativelanguage.googleapis.com/v1beta/models"`

	// Menu photo scans take longer than chat replies.
	ScanTimeout time.Duration `envconfig:"CONCIERGE_SCAN_TIMEOUT" default:"45s"`
}

type CallsConfig struct {
	Timeout time.Duration `envconfig:"CALL_TIMEOUT" default:"15s"`
}

type SessionConfig struct {
	IdleTTL       time.Duration `envconfig:"SESSION_IDLE_TTL" default:"4h"`
	SweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"5m"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// AggregatorConfig is what agg-svc reads; it shares the Redis and Kafka
// sections with storefront-svc.
type AggregatorConfig struct {
	ServiceName string `envconfig:"SERVICE_NAME" default:"agg-svc"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	Timezone    string `envconfig:"TIMEZONE" default:"Asia/Kolkata"`
	Redis       RedisConfig
	Kafka       KafkaConfig
}

func (a AggregatorConfig) Location() *time.Location {
	return AppConfig{Timezone: a.Timezone}.Location()
}

func LoadAggregator() (*AggregatorConfig, error) {
	var cfg AggregatorConfig
	if err := envconfig.Process("AGG", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// GatewayConfig is what api-gateway reads.
type GatewayConfig struct {
	ServiceName   string `envconfig:"SERVICE_NAME" default:"api-gateway"`
	Port          string `envconfig:"PORT" default:"8080"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	StorefrontURL string `envconfig:"STOREFRONT_URL" default:"http://localhost:8081"`
	FrontendDir   string `envconfig:"FRONTEND_DIR" default:"./frontend"`
}

func LoadGateway() (*GatewayConfig, error) {
	var cfg GatewayConfig
	if err := envconfig.Process("GATEWAY", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func MustInitPostgres(cfg DBConfig) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db
}

func MustInitRedis(cfg RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(cfg KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	})
}

func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Broker),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}
}
