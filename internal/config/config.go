package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type AppConfig struct {
	ENV string `yaml:"env"`
}

type LogConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	Component string `yaml:"component"`
	Source    bool   `yaml:"source"`
}

type DBConfig struct {
	Driver      string `yaml:"driver"` // mysql | postgres | sqlite
	DSN         string `yaml:"dsn"`
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	User        string `yaml:"user"`
	Password    string `yaml:"password"`
	Name        string `yaml:"name"`
	LogLevel    string `yaml:"log_level"` // gorm logger: silent | error | warn | info
	AutoMigrate bool   `yaml:"auto_migrate"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type GRPCConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type HTTPConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
}

// DatingConfig holds the tunables of the matching engine.
type DatingConfig struct {
	// Timezone decides where the super-like "day" starts and ends.
	Timezone              string `yaml:"timezone"`
	DefaultCandidateLimit int    `yaml:"default_candidate_limit"`
	MaxCandidateLimit     int    `yaml:"max_candidate_limit"`
	IncomingLikesPageSize int    `yaml:"incoming_likes_page_size"`
	LikeCountTTLSeconds   int    `yaml:"like_count_ttl_seconds"`
}

type Config struct {
	App    AppConfig    `yaml:"app"`
	Log    LogConfig    `yaml:"log"`
	DB     DBConfig     `yaml:"db"`
	Redis  RedisConfig  `yaml:"redis"`
	GRPC   GRPCConfig   `yaml:"grpc"`
	HTTP   HTTPConfig   `yaml:"http"`
	Dating DatingConfig `yaml:"dating"`
}

// New builds the configuration from defaults and environment variables only.
func New() *Config {
	cfg := defaults()
	applyEnv(cfg)
	return cfg
}

// Load builds the configuration in three layers:
//  1. built-in defaults
//  2. optional YAML file at path (${VAR} references are expanded)
//  3. environment variables, including those from a local .env file
func Load(path string) (*Config, error) {
	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load()

	cfg := defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}

	cfg.App.ENV = "production"

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Log.Component = "dating"

	cfg.DB.Driver = "mysql"
	cfg.DB.Host = "localhost"
	cfg.DB.Port = "3306"
	cfg.DB.User = "root"
	cfg.DB.Password = "root"
	cfg.DB.Name = "comradezone"
	cfg.DB.LogLevel = "warn"
	cfg.DB.AutoMigrate = true

	cfg.Redis.Addr = "localhost:6379"

	cfg.GRPC.Host = "127.0.0.1"
	cfg.GRPC.Port = "50051"

	cfg.HTTP.Enabled = true
	cfg.HTTP.Host = "127.0.0.1"
	cfg.HTTP.Port = "8080"

	cfg.Dating.Timezone = "UTC"
	cfg.Dating.DefaultCandidateLimit = 10
	cfg.Dating.MaxCandidateLimit = 50
	cfg.Dating.IncomingLikesPageSize = 20
	cfg.Dating.LikeCountTTLSeconds = 3600

	return cfg
}

func applyEnv(cfg *Config) {
	cfg.App.ENV = getEnvDefault("APP_ENV", cfg.App.ENV)

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", cfg.Log.Format)
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", cfg.Log.Component)
	cfg.Log.Source = getEnvBool("LOG_SOURCE", cfg.Log.Source)

	// Database
	cfg.DB.Driver = strings.ToLower(getEnvDefault("DB_DRIVER", cfg.DB.Driver))
	cfg.DB.DSN = getEnvDefault("DB_DSN", cfg.DB.DSN)
	if v := os.Getenv("MYSQL_DSN"); v != "" && cfg.DB.Driver == "mysql" {
		cfg.DB.DSN = v
	}
	cfg.DB.Host = getEnvDefault("DB_HOST", cfg.DB.Host)
	cfg.DB.Port = getEnvDefault("DB_PORT", cfg.DB.Port)
	cfg.DB.User = getEnvDefault("DB_USER", cfg.DB.User)
	cfg.DB.Password = getEnvDefault("DB_PASSWORD", cfg.DB.Password)
	cfg.DB.Name = getEnvDefault("DB_NAME", cfg.DB.Name)
	cfg.DB.LogLevel = getEnvDefault("DB_LOG_LEVEL", cfg.DB.LogLevel)
	cfg.DB.AutoMigrate = getEnvBool("DB_AUTO_MIGRATE", cfg.DB.AutoMigrate)
	if cfg.DB.DSN == "" {
		cfg.DB.DSN = buildDSN(cfg.DB)
	}

	// Redis
	cfg.Redis.Addr = getEnvDefault("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvInt("REDIS_DB", cfg.Redis.DB)

	// gRPC
	cfg.GRPC.Host = getEnvDefault("GRPC_HOST", cfg.GRPC.Host)
	cfg.GRPC.Port = getEnvDefault("GRPC_PORT", cfg.GRPC.Port)

	// HTTP gateway
	cfg.HTTP.Enabled = getEnvBool("HTTP_ENABLED", cfg.HTTP.Enabled)
	cfg.HTTP.Host = getEnvDefault("HTTP_HOST", cfg.HTTP.Host)
	cfg.HTTP.Port = getEnvDefault("HTTP_PORT", cfg.HTTP.Port)

	// Dating engine
	cfg.Dating.Timezone = getEnvDefault("DATING_TIMEZONE", cfg.Dating.Timezone)
	cfg.Dating.DefaultCandidateLimit = getEnvInt("DATING_DEFAULT_CANDIDATE_LIMIT", cfg.Dating.DefaultCandidateLimit)
	cfg.Dating.MaxCandidateLimit = getEnvInt("DATING_MAX_CANDIDATE_LIMIT", cfg.Dating.MaxCandidateLimit)
	cfg.Dating.IncomingLikesPageSize = getEnvInt("DATING_INCOMING_LIKES_PAGE_SIZE", cfg.Dating.IncomingLikesPageSize)
	cfg.Dating.LikeCountTTLSeconds = getEnvInt("DATING_LIKE_COUNT_TTL_SECONDS", cfg.Dating.LikeCountTTLSeconds)
}

func buildDSN(c DBConfig) string {
	switch c.Driver {
	case "postgres":
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			c.Host, c.Port, c.User, c.Password, c.Name,
		)
	case "sqlite":
		return c.Name + ".db"
	default:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			c.User, c.Password, c.Host, c.Port, c.Name,
		)
	}
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return isTruthy(v)
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
