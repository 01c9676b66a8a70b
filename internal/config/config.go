package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/clarasbuffet/CBF-BookingService/internal/domain"
)

// Calendar backends
const (
	BackendGoogle   = "google"
	BackendPostgres = "postgres"
)

// Config конфигурация сервиса, загружается из config.toml.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Calendar CalendarConfig `toml:"calendar"`
	Database DatabaseConfig `toml:"database"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера.
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
	RateLimitRPS    float64  `toml:"rate_limit_rps"`
	RateLimitBurst  int      `toml:"rate_limit_burst"`
}

// LogsConfig настройки логирования.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CalendarConfig настройки хранилища календаря.
// backend = "google"  — события живут в Google Calendar (по умолчанию);
// backend = "postgres" — self-hosted таблица events.
type CalendarConfig struct {
	Backend         string `toml:"backend"`
	CredentialsFile string `toml:"credentials_file"`
	CalendarID      string `toml:"calendar_id"`
	Timeout         int    `toml:"timeout"`
}

// DatabaseConfig настройки PostgreSQL (используется только при
// backend = "postgres").
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// BookingConfig дневные лимиты бронирования.
type BookingConfig struct {
	MaxMainPerDay        int `toml:"max_main_per_day"`
	MaxRentalPerDay      int `toml:"max_rental_per_day"`
	DefaultDurationHours int `toml:"default_duration_hours"`
}

// DSN собирает строку подключения к PostgreSQL.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Load читает конфигурацию из TOML файла и применяет дефолты.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        3000,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			AllowedOrigins:  []string{"*"},
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "cbf-booking-service",
		},
		Calendar: CalendarConfig{
			Backend: BackendGoogle,
			Timeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Booking: BookingConfig{
			MaxMainPerDay:        domain.DefaultMaxMainPerDay,
			MaxRentalPerDay:      domain.DefaultMaxRentalPerDay,
			DefaultDurationHours: domain.DefaultEventDurationHours,
		},
	}
}

func (c *Config) validate() error {
	switch c.Calendar.Backend {
	case BackendGoogle:
		if c.Calendar.CredentialsFile == "" {
			return fmt.Errorf("config: calendar.credentials_file is required for google backend")
		}
		if c.Calendar.CalendarID == "" {
			return fmt.Errorf("config: calendar.calendar_id is required for google backend")
		}
	case BackendPostgres:
		if c.Database.DBName == "" {
			return fmt.Errorf("config: database.dbname is required for postgres backend")
		}
	default:
		return fmt.Errorf("config: unknown calendar backend %q", c.Calendar.Backend)
	}

	if c.Booking.MaxMainPerDay <= 0 || c.Booking.MaxRentalPerDay <= 0 {
		return fmt.Errorf("config: booking limits must be positive")
	}
	if c.Booking.DefaultDurationHours <= 0 || c.Booking.DefaultDurationHours > domain.MaxEventDurationHours {
		return fmt.Errorf("config: booking.default_duration_hours must be in (0, %d]", domain.MaxEventDurationHours)
	}

	return nil
}
