package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AdminToken        string `mapstructure:"ADMIN_TOKEN"`

	// MongoDB.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Credentials and one-time codes.
	JWTSecret      string        `mapstructure:"JWT_SECRET"`
	OTPLength      int           `mapstructure:"OTP_LENGTH"`
	OTPTTL         time.Duration `mapstructure:"OTP_TTL"`
	SessionTTL     time.Duration `mapstructure:"SESSION_TTL"`
	OTPMaxAttempts int           `mapstructure:"OTP_MAX_ATTEMPTS"`

	// Calendar days are cut in this zone.
	Timezone string `mapstructure:"TIMEZONE"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisOTPDB    int    `mapstructure:"REDIS_OTP_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Outbound mail.
	NotifierMode string        `mapstructure:"NOTIFIER_MODE"`
	SMTPHost     string        `mapstructure:"SMTP_HOST"`
	SMTPPort     int           `mapstructure:"SMTP_PORT"`
	SMTPUser     string        `mapstructure:"SMTP_USER"`
	SMTPPassword string        `mapstructure:"SMTP_PASSWORD"`
	MailFrom     string        `mapstructure:"MAIL_FROM"`
	ReminderLead time.Duration `mapstructure:"REMINDER_LEAD"`
}

// Notifier modes.
const (
	NotifierQueue = "queue"
	NotifierSMTP  = "smtp"
	NotifierLog   = "log"
)

var configKeys = []string{
	"APP_PORT", "ENV", "LOG_LEVEL", "MAX_REQUESTS_PER_MIN", "ADMIN_TOKEN",
	"DATABASE_URL", "DATABASE_NAME",
	"JWT_SECRET", "OTP_LENGTH", "OTP_TTL", "SESSION_TTL", "OTP_MAX_ATTEMPTS",
	"TIMEZONE",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_OTP_DB", "REDIS_QUEUE_DB",
	"NOTIFIER_MODE", "SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASSWORD", "MAIL_FROM", "REMINDER_LEAD",
}

// LoadConfig reads .env (if any), config.yaml (if any) and the environment,
// in increasing order of precedence.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading process environment")
	}

	v := viper.New()
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	// AutomaticEnv only answers Get; Unmarshal needs every key bound.
	for _, key := range configKeys {
		_ = v.BindEnv(key)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.NotifierMode = strings.ToLower(cfg.NotifierMode)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "bookwise")
	v.SetDefault("OTP_LENGTH", 6)
	v.SetDefault("OTP_TTL", "5m")
	v.SetDefault("SESSION_TTL", "48h")
	v.SetDefault("OTP_MAX_ATTEMPTS", 5)
	v.SetDefault("TIMEZONE", "UTC")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_OTP_DB", 2)
	v.SetDefault("REDIS_QUEUE_DB", 3)
	v.SetDefault("NOTIFIER_MODE", NotifierQueue)
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("REMINDER_LEAD", "1h")
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.OTPLength <= 0 {
		return fmt.Errorf("OTP_LENGTH must be positive, got %d", c.OTPLength)
	}
	if c.OTPTTL <= 0 || c.SessionTTL <= 0 {
		return fmt.Errorf("OTP_TTL and SESSION_TTL must be positive")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	switch c.NotifierMode {
	case NotifierQueue, NotifierSMTP, NotifierLog:
	default:
		return fmt.Errorf("unknown NOTIFIER_MODE %q", c.NotifierMode)
	}
	if c.NotifierMode != NotifierLog && c.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST is required when NOTIFIER_MODE is %q", c.NotifierMode)
	}
	return nil
}

// Location returns the time zone calendar days are computed in.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
