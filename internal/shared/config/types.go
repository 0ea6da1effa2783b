package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Mode     string `mapstructure:"mode"`
	Timezone string `mapstructure:"timezone"`
	// APIToken guards the manual job trigger endpoints when set.
	APIToken string `mapstructure:"api_token"`
	// AllowedOrigins enables CORS for the listed origins.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// TriggerRateLimit caps manual job triggers per client IP per minute.
	// Enforced only when Redis is enabled.
	TriggerRateLimit int `mapstructure:"trigger_rate_limit"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SQLitePath      string `mapstructure:"sqlite_path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN returns the driver specific connection string.
// Dates are parsed as UTC so civil dates survive the round trip unchanged.
func (d *DatabaseConfig) GetDSN() string {
	switch d.Driver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database)
	case DriverSQLite:
		return d.SQLitePath
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	}
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

const (
	EmailProviderBrevo = "brevo"
	EmailProviderSMTP  = "smtp"
	EmailProviderSES   = "ses"
	EmailProviderLog   = "log"
)

type BrevoConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

type SESConfig struct {
	Region string `mapstructure:"region"`
}

// EmailConfig is read once at startup and handed to the sender factory.
type EmailConfig struct {
	Provider    string        `mapstructure:"provider"`
	FromAddress string        `mapstructure:"from_address"`
	FromName    string        `mapstructure:"from_name"`
	SendTimeout time.Duration `mapstructure:"send_timeout"`
	Brevo       BrevoConfig   `mapstructure:"brevo"`
	SMTP        SMTPConfig    `mapstructure:"smtp"`
	SES         SESConfig     `mapstructure:"ses"`
}

type SchedulerConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	DispatchCron  string        `mapstructure:"dispatch_cron"`
	RecurringCron string        `mapstructure:"recurring_cron"`
	RunTimeout    time.Duration `mapstructure:"run_timeout"`
}

type ReminderConfig struct {
	DateFormat string        `mapstructure:"date_format"`
	LockTTL    time.Duration `mapstructure:"lock_ttl"`
}
