// Package config loads application configuration from configs/config.yml and
// environment overrides, producing a single Config injected at startup.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// devSecretKey is only used when auth.allow_dev_secret is set.
const devSecretKey = "dev-secret-key-change-in-production"

// Config holds application configuration.
type Config struct {
	Port   string       `mapstructure:"port"`
	Log    LogConfig    `mapstructure:"log"`
	DB     DBConfig     `mapstructure:"db"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Admin  AdminConfig  `mapstructure:"admin"`
	Server ServerConfig `mapstructure:"server"`
	OTel   OTelConfig   `mapstructure:"otel"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Path   string `mapstructure:"path"` // sqlite file, used when DSN is empty
}

type AuthConfig struct {
	SecretKey      string        `mapstructure:"secret_key"`
	TokenTTL       time.Duration `mapstructure:"token_ttl"`
	BcryptCost     int           `mapstructure:"bcrypt_cost"`
	AllowDevSecret bool          `mapstructure:"allow_dev_secret"`
}

// AdminConfig describes the account seeded at startup. Empty email disables seeding.
type AdminConfig struct {
	Name     string `mapstructure:"name"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

type OTelConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

// envOverrides are the variables the hosted deployment sets.
type envOverrides struct {
	SecretKey      string `env:"SECRET_KEY"`
	DatabaseURL    string `env:"DATABASE_URL"`
	Port           string `env:"PORT"`
	LogLevel       string `env:"TASKFLOW_LOG_LEVEL"`
	OTelEndpoint   string `env:"TASKFLOW_OTEL_ENDPOINT"`
	AdminPassword  string `env:"TASKFLOW_ADMIN_PASSWORD"`
	AllowDevSecret bool   `env:"TASKFLOW_ALLOW_DEV_SECRET"` // local development only
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.path", "taskflow.db")
	v.SetDefault("auth.token_ttl", 7*24*time.Hour)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("admin.name", "Administrador")
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("otel.service_name", "taskflow")
}

// Load reads the config file at path (or configs/config.yml when path is empty),
// applies environment overrides and validates the result. A missing file is not
// an error: defaults and environment still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs") // configs/config.yml
		v.SetConfigName("config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.SecretKey != "" {
		cfg.Auth.SecretKey = o.SecretKey
	}
	if o.DatabaseURL != "" {
		cfg.DB.Driver = DriverPostgres
		cfg.DB.DSN = o.DatabaseURL
	}
	if o.Port != "" {
		cfg.Port = o.Port
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.OTelEndpoint != "" {
		cfg.OTel.Endpoint = o.OTelEndpoint
	}
	if o.AdminPassword != "" {
		cfg.Admin.Password = o.AdminPassword
	}
	if o.AllowDevSecret {
		cfg.Auth.AllowDevSecret = true
	}
	return nil
}

func (c *Config) validate() error {
	c.DB.Driver = strings.ToLower(strings.TrimSpace(c.DB.Driver))
	switch c.DB.Driver {
	case DriverSQLite:
		if c.DB.DSN == "" && c.DB.Path == "" {
			return errors.New("db.path or db.dsn is required for sqlite")
		}
	case DriverPostgres, DriverMySQL:
		if c.DB.DSN == "" {
			return fmt.Errorf("db.dsn is required for %s", c.DB.Driver)
		}
	default:
		return fmt.Errorf("unsupported db.driver %q", c.DB.Driver)
	}

	if c.Auth.SecretKey == "" {
		if !c.Auth.AllowDevSecret {
			return errors.New("auth.secret_key (or SECRET_KEY) is required")
		}
		c.Auth.SecretKey = devSecretKey
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive, got %s", c.Auth.TokenTTL)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}
	if c.Admin.Email != "" && c.Admin.Password == "" {
		return errors.New("admin.password is required when admin.email is set")
	}
	return nil
}

// SQLiteDSN returns the DSN for the sqlite driver.
func (d DBConfig) SQLiteDSN() string {
	if d.DSN != "" {
		return d.DSN
	}
	return d.Path
}
