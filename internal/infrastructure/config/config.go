package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/reminderly/reminderly/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	Email     sharedConfig.EmailConfig     `mapstructure:"email"`
	Scheduler sharedConfig.SchedulerConfig `mapstructure:"scheduler"`
	Reminder  sharedConfig.ReminderConfig  `mapstructure:"reminder"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from an optional .env file, the config file and
// environment variables. configPath overrides the search path when set.
func Load(env string, configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("REMINDERLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// Validate rejects settings the process cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case sharedConfig.DriverMySQL, sharedConfig.DriverPostgres, sharedConfig.DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	switch c.Email.Provider {
	case sharedConfig.EmailProviderBrevo:
		if c.Email.Brevo.APIKey == "" {
			return fmt.Errorf("email.brevo.api_key is required for the brevo provider")
		}
	case sharedConfig.EmailProviderSMTP:
		if c.Email.SMTP.Host == "" {
			return fmt.Errorf("email.smtp.host is required for the smtp provider")
		}
	case sharedConfig.EmailProviderSES:
		if c.Email.SES.Region == "" {
			return fmt.Errorf("email.ses.region is required for the ses provider")
		}
	case sharedConfig.EmailProviderLog:
	default:
		return fmt.Errorf("unsupported email provider %q", c.Email.Provider)
	}

	if c.Email.SendTimeout <= 0 {
		return fmt.Errorf("email.send_timeout must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.timezone", "UTC")
	v.SetDefault("server.api_token", "")
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("server.trigger_rate_limit", 10)

	// Database defaults
	v.SetDefault("database.driver", sharedConfig.DriverSQLite)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "reminderly")
	v.SetDefault("database.sqlite_path", "reminderly.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Email defaults
	v.SetDefault("email.provider", sharedConfig.EmailProviderLog)
	v.SetDefault("email.from_address", "noreply@example.com")
	v.SetDefault("email.from_name", "Employee Reminder System")
	v.SetDefault("email.send_timeout", "15s")
	v.SetDefault("email.brevo.base_url", "https://api.brevo.com/v3")
	v.SetDefault("email.smtp.port", 587)

	// Scheduler defaults, recurring runs first so spawned instances due today are dispatched
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.recurring_cron", "0 7 * * *")
	v.SetDefault("scheduler.dispatch_cron", "0 8 * * *")
	v.SetDefault("scheduler.run_timeout", "30m")

	// Reminder defaults
	v.SetDefault("reminder.date_format", "January 2, 2006")
	v.SetDefault("reminder.lock_ttl", "35m")
}
