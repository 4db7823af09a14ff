package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	DB      PostgresConfig
	Kafka   KafkaConfig
	Reports ReportsConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type ServerConfig struct {
	Host string
	Port int
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
}

type KafkaConfig struct {
	Brokers       []string
	ReportTopic   string
	OrderTopic    string
	ConsumerGroup string
}

// ReportsConfig tunes the report definitions without touching code.
type ReportsConfig struct {
	Source           string // "postgres" or "memory"
	RecentWindowDays int
	TopCustomers     int
	FeaturedCategory string
	Workers          int
	ExportEnabled    bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "webstore_reports"),
			Env:  getEnv("APP_ENV", "local"),
		},
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvAsInt("HTTP_PORT", 8040),
		},
		DB: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvAsInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			DBName:   getEnv("POSTGRES_DB", "webstore"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
		},
		Kafka: KafkaConfig{
			Brokers:       splitAndTrim(getEnv("KAFKA_BOOTSTRAP_SERVERS", "localhost:9092")),
			ReportTopic:   getEnv("KAFKA_REPORT_TOPIC", "webstore_report_rows"),
			OrderTopic:    getEnv("KAFKA_ORDER_TOPIC", "webstore_orders"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "webstore-reports"),
		},
		Reports: ReportsConfig{
			Source:           getEnv("REPORT_SOURCE", "postgres"),
			RecentWindowDays: getEnvAsInt("REPORT_RECENT_WINDOW_DAYS", 30),
			TopCustomers:     getEnvAsInt("REPORT_TOP_CUSTOMERS", 3),
			FeaturedCategory: getEnv("REPORT_FEATURED_CATEGORY", "Electronics"),
			Workers:          getEnvAsInt("REPORT_WORKERS", 4),
			ExportEnabled:    getEnvAsBool("REPORT_EXPORT_ENABLED", false),
		},
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

/* ================= helpers ================= */

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	if c.Reports.Source != "postgres" && c.Reports.Source != "memory" {
		return fmt.Errorf("REPORT_SOURCE must be postgres or memory")
	}
	if c.Reports.Source == "postgres" {
		if c.DB.Host == "" || c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("database config is incomplete")
		}
	}
	if c.Reports.RecentWindowDays <= 0 {
		return fmt.Errorf("REPORT_RECENT_WINDOW_DAYS must be positive")
	}
	if c.Reports.TopCustomers <= 0 {
		return fmt.Errorf("REPORT_TOP_CUSTOMERS must be positive")
	}
	if c.Reports.ExportEnabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka brokers is empty")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if val := strings.TrimSpace(p); val != "" {
			out = append(out, val)
		}
	}
	return out
}
