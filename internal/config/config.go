package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	DefaultView string `mapstructure:"default_view" yaml:"default_view" validate:"oneof=visualize record"`
	PatientName string `mapstructure:"patient_name" yaml:"patient_name" validate:"required"`
	OutputDir   string `mapstructure:"output_dir" yaml:"output_dir" validate:"required"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=panic fatal error warn warning info debug trace"`
	// Display
	Decimals  int  `mapstructure:"decimals" yaml:"decimals" validate:"gte=0,lte=10"`
	Sparkline bool `mapstructure:"sparkline" yaml:"sparkline"`
	// Loaders
	XLSXSheet string `mapstructure:"xlsx_sheet" yaml:"xlsx_sheet"`
}

var validate = validator.New()

// Validate checks value constraints declared on the struct tags.
func (c *Global) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".inflammation"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.inflammation/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := defaultDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file (cfgFile or ~/.inflammation/config.yaml) > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("INFLAMMATION")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("default_view", "visualize")
	v.SetDefault("patient_name", "UNKNOWN")
	v.SetDefault("output_dir", ".")
	v.SetDefault("log_level", "warn")
	v.SetDefault("decimals", 2)
	v.SetDefault("sparkline", true)
	v.SetDefault("xlsx_sheet", "")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := defaultDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read: a missing file falls back to defaults, a broken one fails
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
