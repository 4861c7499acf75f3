package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	AES      AESConfig      `mapstructure:"aes"`
	Inbound  InboundConfig  `mapstructure:"inbound"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for merchant secrets at rest
}

// InboundConfig controls authentication of the payment provider event feed.
// An empty JWTSecret disables bearer tokens; an empty SigningSecret disables
// body signature checks. With both empty the event route is unauthenticated.
type InboundConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret"`
	JWTIssuer     string        `mapstructure:"jwt_issuer"`
	TokenExpiry   time.Duration `mapstructure:"token_expiry"` // lifetime of tokens minted by notifierctl
	SigningSecret string        `mapstructure:"signing_secret"`
	MaxBodyBytes  int64         `mapstructure:"max_body_bytes"`
}

// WebhookConfig controls outbound delivery to merchant endpoints.
type WebhookConfig struct {
	MaxRetries        int           `mapstructure:"max_retries"`
	RetryDelay        time.Duration `mapstructure:"retry_delay"`
	Timeout           time.Duration `mapstructure:"timeout"`
	DedupTTL          time.Duration `mapstructure:"dedup_ttl"`
	AllowInsecureURLs bool          `mapstructure:"allow_insecure_urls"` // accept http:// targets (local dev only)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Default delivery policy.
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 3 * time.Second
	DefaultTimeout    = 5 * time.Second
)

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: PWN_ (Payment Webhook Notifier).
// Nested keys use underscore: PWN_DATABASE_HOST, PWN_WEBHOOK_MAX_RETRIES, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "webhook_notifier")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("aes.key", "")
	v.SetDefault("inbound.jwt_secret", "")
	v.SetDefault("inbound.jwt_issuer", "payment-provider")
	v.SetDefault("inbound.token_expiry", "24h")
	v.SetDefault("inbound.signing_secret", "")
	v.SetDefault("inbound.max_body_bytes", 1<<20)
	v.SetDefault("webhook.max_retries", DefaultMaxRetries)
	v.SetDefault("webhook.retry_delay", DefaultRetryDelay.String())
	v.SetDefault("webhook.timeout", DefaultTimeout.String())
	v.SetDefault("webhook.dedup_ttl", "24h")
	v.SetDefault("webhook.allow_insecure_urls", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PWN_WEBHOOK_MAX_RETRIES -> webhook.max_retries
	v.SetEnvPrefix("PWN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Webhook.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (w WebhookConfig) validate() error {
	if w.MaxRetries < 1 {
		return fmt.Errorf("webhook.max_retries must be at least 1, got %d", w.MaxRetries)
	}
	if w.RetryDelay < 0 {
		return fmt.Errorf("webhook.retry_delay must not be negative, got %s", w.RetryDelay)
	}
	if w.Timeout <= 0 {
		return fmt.Errorf("webhook.timeout must be positive, got %s", w.Timeout)
	}
	return nil
}
