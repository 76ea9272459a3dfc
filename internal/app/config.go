package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"ecieskem/internal/domain"
)

const (
	EnvPrefix      = "ECIESKEM"
	configName     = "config"
	configType     = "yaml"
	defaultHomeDir = ".ecieskem"
)

// Config holds runtime options for building the app.
type Config struct {
	Home        string `mapstructure:"home" validate:"required"`
	LogLevel    string `mapstructure:"log_level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Curve       string `mapstructure:"curve" validate:"required,curve"`
	Hash        string `mapstructure:"hash" validate:"required,hash"`
	PointFormat string `mapstructure:"point_format" validate:"required,point_format"`
	KeySize     int    `mapstructure:"key_size" validate:"gt=0"`
}

// DefaultHome returns $HOME/.ecieskem, or .ecieskem when the home
// directory is unknown.
func DefaultHome() string {
	h, err := os.UserHomeDir()
	if err != nil {
		return defaultHomeDir
	}
	return filepath.Join(h, defaultHomeDir)
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("home", DefaultHome())
	v.SetDefault("log_level", "info")
	v.SetDefault("curve", domain.P256.String())
	v.SetDefault("hash", domain.SHA256.String())
	v.SetDefault("point_format", domain.Uncompressed.String())
	v.SetDefault("key_size", 32)
}

// LoadConfig reads configuration into a Config. Flags must already be
// bound on v. A missing config file is not an error.
func LoadConfig(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.AddConfigPath(v.GetString("home"))
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config parse error: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config parse error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// DerivationDefaults converts the configured KEM defaults. Salt and info
// are per-call inputs and stay empty.
func (c Config) DerivationDefaults() (domain.DerivationParams, error) {
	h, err := domain.ParseHash(c.Hash)
	if err != nil {
		return domain.DerivationParams{}, err
	}
	f, err := domain.ParsePointFormat(c.PointFormat)
	if err != nil {
		return domain.DerivationParams{}, err
	}
	return domain.DerivationParams{Hash: h, KeySize: c.KeySize, PointFormat: f}, nil
}

// DefaultCurve returns the configured curve for new keys.
func (c Config) DefaultCurve() (domain.Curve, error) {
	return domain.ParseCurve(c.Curve)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("curve", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseCurve(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("hash", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseHash(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("point_format", func(fl validator.FieldLevel) bool {
		_, err := domain.ParsePointFormat(fl.Field().String())
		return err == nil
	})
	return v
}
