// Package config holds the runtime settings shared by every command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Zachkp/portfolio/internal/theme"
)

const EnvPrefix = "PORTFOLIO"

type Config struct {
	Port    string `mapstructure:"port"`
	Content string `mapstructure:"content"`
	Images  string `mapstructure:"images"`
	Output  string `mapstructure:"output"`
	DB      string `mapstructure:"db"`
	Theme   string `mapstructure:"theme"`
	Motion  bool   `mapstructure:"motion"`
	Strict  bool   `mapstructure:"strict"`
	Log     Log    `mapstructure:"log"`
	Gin     Gin    `mapstructure:"gin"`
}

type Log struct {
	Level string `mapstructure:"level"`
	Human bool   `mapstructure:"human"`
}

type Gin struct {
	Mode string `mapstructure:"mode"`
}

// SetDefaults registers every key so env overrides work without a file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("content", "content/portfolio.json")
	v.SetDefault("images", "images")
	v.SetDefault("output", "public")
	v.SetDefault("db", "")
	v.SetDefault("theme", theme.Light.String())
	v.SetDefault("motion", true)
	v.SetDefault("strict", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.human", true)
	v.SetDefault("gin.mode", "release")
}

// New returns a viper instance with defaults and the PORTFOLIO_ env prefix.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// PORT is what most hosts inject.
	_ = v.BindEnv("port", EnvPrefix+"_PORT", "PORT")
	return v
}

// ReadFile reads an explicit config file, or portfolio.yaml from the working
// directory when path is empty. A missing default file is not an error.
func ReadFile(v *viper.Viper, path string) (string, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("portfolio")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && path == "" {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load decodes and checks the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Check() error {
	if c.Content == "" {
		return errors.New("config: content path is required")
	}
	if _, err := theme.ParseTheme(c.Theme); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Gin.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: unknown gin mode %q", c.Gin.Mode)
	}
	return nil
}

// DefaultTheme is the theme a visitor without a stored preference gets.
func (c *Config) DefaultTheme() theme.Theme {
	t, err := theme.ParseTheme(c.Theme)
	if err != nil {
		return theme.Light
	}
	return t
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
