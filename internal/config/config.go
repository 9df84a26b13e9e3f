package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "CHECKOUT_"

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Logger   LoggerConfig   `koanf:"logger"`
	Store    StoreConfig    `koanf:"store"`
	Moneta   MonetaConfig   `koanf:"moneta"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

// StoreConfig holds the store-wide settings the payment method reads
type StoreConfig struct {
	PrimaryCurrencyID int64 `koanf:"primary_currency_id" validate:"required,gt=0"`
}

// MonetaConfig seeds the gateway settings when the payment method is installed
type MonetaConfig struct {
	MntID                   string `koanf:"mnt_id"`
	Hashcode                string `koanf:"hashcode"`
	TestMode                bool   `koanf:"test_mode"`
	PaymentURL              string `koanf:"payment_url" validate:"required,url"`
	AdditionalFee           string `koanf:"additional_fee" validate:"omitempty,numeric"`
	AdditionalFeePercentage bool   `koanf:"additional_fee_percentage"`
	SignatureScheme         string `koanf:"signature_scheme" validate:"omitempty,oneof=md5 hmac-sha256"`
	InstallOnStart          bool   `koanf:"install_on_start"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

// defaults mirror what a fresh install uses
var defaults = map[string]any{
	"primary.env":                 "development",
	"server.port":                 "8080",
	"server.read_timeout":         "15s",
	"server.write_timeout":        "15s",
	"server.idle_timeout":         "60s",
	"database.ssl_mode":           "disable",
	"database.max_open_conns":     10,
	"database.max_idle_conns":     2,
	"database.conn_max_lifetime":  "1h",
	"database.conn_max_idle_time": "30m",
	"moneta.payment_url":          "https://www.payanyway.ru/assistant.htm",
	"moneta.test_mode":            true,
	"moneta.signature_scheme":     "md5",
	"logger.level":                "info",
	"logger.format":               "text",
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
