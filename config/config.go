package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`

	// Store configuration.
	StoreDriver  string `mapstructure:"STORE_DRIVER"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`
	SeedOnStart  bool   `mapstructure:"SEED_ON_START"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Session configuration.
	SessionStore        string        `mapstructure:"SESSION_STORE"`
	SessionSecret       string        `mapstructure:"SESSION_SECRET"`
	SessionTTL          time.Duration `mapstructure:"SESSION_TTL"`
	SessionCookieName   string        `mapstructure:"SESSION_COOKIE_NAME"`
	SessionCookieSecure bool          `mapstructure:"SESSION_COOKIE_SECURE"`

	// OTP configuration.
	OTPTTL      time.Duration `mapstructure:"OTP_TTL"`
	OTPEcho     bool          `mapstructure:"OTP_ECHO"`
	OTPHashCost int           `mapstructure:"OTP_HASH_COST"`

	// Mail configuration.
	SMTPHost         string `mapstructure:"SMTP_HOST"`
	SMTPPort         int    `mapstructure:"SMTP_PORT"`
	SMTPUser         string `mapstructure:"SMTP_USER"`
	SMTPPassword     string `mapstructure:"SMTP_PASSWORD"`
	SMTPUseTLS       bool   `mapstructure:"SMTP_USE_TLS"`
	EmailFrom        string `mapstructure:"EMAIL_FROM"`
	MailQueueEnabled bool   `mapstructure:"MAIL_QUEUE_ENABLED"`

	// Seed accounts.
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	EmployeeEmail string `mapstructure:"EMPLOYEE_EMAIL"`
}

var AppConfig Config

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	v.SetDefault("STORE_DRIVER", "mongo")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "employee-management")
	v.SetDefault("SEED_ON_START", true)

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_SESSION_DB", 1)
	v.SetDefault("REDIS_QUEUE_DB", 3)

	v.SetDefault("SESSION_STORE", "redis")
	v.SetDefault("SESSION_SECRET", "dev-session-secret-change-me")
	v.SetDefault("SESSION_TTL", 24*time.Hour)
	v.SetDefault("SESSION_COOKIE_NAME", "staffhub.sid")
	v.SetDefault("SESSION_COOKIE_SECURE", false)

	v.SetDefault("OTP_TTL", 5*time.Minute)
	v.SetDefault("OTP_ECHO", true)
	v.SetDefault("OTP_HASH_COST", 10)

	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USE_TLS", true)
	v.SetDefault("EMAIL_FROM", "Staffhub <noreply@company.com>")
	v.SetDefault("MAIL_QUEUE_ENABLED", false)

	v.SetDefault("ADMIN_EMAIL", "admin@company.com")
	v.SetDefault("EMPLOYEE_EMAIL", "employee@company.com")
}

// Load reads configuration through v: config.yaml in "." or "./config", then
// environment variables, then defaults.
func Load(v *viper.Viper) (Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	// The raw code is never echoed in production unless explicitly requested.
	if cfg.Env == "production" && !v.InConfig("OTP_ECHO") && !isEnvSet("OTP_ECHO") {
		cfg.OTPEcho = false
	}
	return cfg, cfg.Validate()
}

// LoadConfig loads the global AppConfig and exits the process on failure.
func LoadConfig() {
	cfg, err := Load(viper.New())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Validate rejects configurations the server cannot run with.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case "mongo", "memory":
	default:
		return fmt.Errorf("STORE_DRIVER must be mongo or memory, got %q", c.StoreDriver)
	}
	switch c.SessionStore {
	case "redis", "memory":
	default:
		return fmt.Errorf("SESSION_STORE must be redis or memory, got %q", c.SessionStore)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.OTPTTL <= 0 {
		return fmt.Errorf("OTP_TTL must be positive")
	}
	if c.Env == "production" && len(c.SessionSecret) < 32 {
		return fmt.Errorf("SESSION_SECRET must be at least 32 characters in production")
	}
	return nil
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func isEnvSet(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
