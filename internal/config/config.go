// Package config provides configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Gateways   GatewaysConfig   `mapstructure:"gateways"`
	Outbox     OutboxConfig     `mapstructure:"outbox"`
	Cooldown   CooldownConfig   `mapstructure:"cooldown"`
	Templates  TemplatesConfig  `mapstructure:"templates"`
	SLA        SLAConfig        `mapstructure:"sla"`
	Reminders  RemindersConfig  `mapstructure:"reminders"`
	Events     EventsConfig     `mapstructure:"events"`
	OptOut     OptOutConfig     `mapstructure:"opt_out"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	DBName         string `mapstructure:"dbname"`
	SSLMode        string `mapstructure:"sslmode"`
	AutoMigrate    bool   `mapstructure:"auto_migrate"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type GatewaysConfig struct {
	SMS   GatewayConfig `mapstructure:"sms"`
	Email GatewayConfig `mapstructure:"email"`
	Voice GatewayConfig `mapstructure:"voice"`
}

type GatewayConfig struct {
	URL            string               `mapstructure:"url"`
	AuthKey        string               `mapstructure:"auth_key"`
	From           string               `mapstructure:"from"`
	Timeout        int                  `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

// OutboxConfig decides which channels route automated content through
// human QA.
type OutboxConfig struct {
	QARequired map[string]bool `mapstructure:"qa_required"`
}

type CooldownConfig struct {
	Backend       string `mapstructure:"backend"`
	WindowSeconds int    `mapstructure:"window_seconds"`
	KeyPrefix     string `mapstructure:"key_prefix"`
}

type TemplatesConfig struct {
	DefaultLocale string `mapstructure:"default_locale"`
}

type SLAConfig struct {
	SweepIntervalSeconds int `mapstructure:"sweep_interval_seconds"`
}

type RemindersConfig struct {
	DispatchIntervalSeconds int `mapstructure:"dispatch_interval_seconds"`
	BatchSize               int `mapstructure:"batch_size"`
}

type EventsConfig struct {
	Backend      string `mapstructure:"backend"`
	RedisChannel string `mapstructure:"redis_channel"`
	AMQPURL      string `mapstructure:"amqp_url"`
	Exchange     string `mapstructure:"exchange"`
}

type OptOutConfig struct {
	StopKeywords  []string `mapstructure:"stop_keywords"`
	StartKeywords []string `mapstructure:"start_keywords"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	RequestTimeout int      `mapstructure:"request_timeout"`
}

// LoadConfig reads configPath, overlaying environment variables. A .env
// file in the working directory is loaded first when present.
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("database.migrations_path", "./migrations")
	v.SetDefault("redis.db", 0)

	for _, ch := range []string{"sms", "email", "voice"} {
		prefix := "gateways." + ch
		v.SetDefault(prefix+".timeout", 30)
		v.SetDefault(prefix+".circuit_breaker.max_requests", 3)
		v.SetDefault(prefix+".circuit_breaker.interval", 60)
		v.SetDefault(prefix+".circuit_breaker.timeout", 60)
		v.SetDefault(prefix+".circuit_breaker.failure_ratio", 0.6)
		v.SetDefault(prefix+".circuit_breaker.consecutive_fails", 5)
	}

	v.SetDefault("outbox.qa_required", map[string]bool{"email": true, "sms": false, "voice": false})
	v.SetDefault("cooldown.backend", "redis")
	v.SetDefault("cooldown.window_seconds", 300)
	v.SetDefault("cooldown.key_prefix", "cooldown:")
	v.SetDefault("templates.default_locale", "en")
	v.SetDefault("sla.sweep_interval_seconds", 60)
	v.SetDefault("reminders.dispatch_interval_seconds", 60)
	v.SetDefault("reminders.batch_size", 50)
	v.SetDefault("events.backend", "redis")
	v.SetDefault("events.redis_channel", "crm-comms.events")
	v.SetDefault("events.exchange", "crm-comms.events")
	v.SetDefault("opt_out.stop_keywords", []string{"STOP", "STOPALL", "UNSUBSCRIBE", "CANCEL", "END", "QUIT"})
	v.SetDefault("opt_out.start_keywords", []string{"START", "UNSTOP", "YES"})
	v.SetDefault("middleware.rate_limit", 100)
	v.SetDefault("middleware.rate_limit_burst", 1000)
	v.SetDefault("middleware.enable_cors", true)
	v.SetDefault("middleware.allowed_origins", []string{"*"})
	v.SetDefault("middleware.request_timeout", 30)
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// GetURL returns the DSN in URL form, as golang-migrate expects.
func (d *DatabaseConfig) GetURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

// Addr returns host:port for the Redis client.
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Window returns the cooldown window as a duration.
func (c *CooldownConfig) Window() time.Duration {
	return time.Duration(c.WindowSeconds) * time.Second
}

// RequiresQA reports whether automated sends on channel are parked for review.
func (o *OutboxConfig) RequiresQA(channel string) bool {
	return o.QARequired[channel]
}
