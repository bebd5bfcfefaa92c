package config

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Address returns the listen address for the HTTP server.
func (s ServerConfig) Address() string {
	return fmt.Sprintf(":%d", s.Port)
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variables override the file, e.g. server.port -> SERVER_PORT.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	// The hosting convention is a bare PORT variable.
	_ = viper.BindEnv("server.port", "SERVER_PORT", "PORT")

	viper.SetDefault("server.port", 3000)
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "exercise_tracker")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", LogFormatText)

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// No config file is fine, defaults and env vars carry the setup.
		err = nil
	} else if err != nil {
		return
	}

	if err = viper.Unmarshal(&config); err != nil {
		return
	}

	if err = config.Validate(); err != nil {
		return
	}

	return config, nil
}

// Validate checks that the loaded configuration is usable before the process
// commits to starting up with it.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.Server,
		validation.Field(&c.Server.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := validation.ValidateStruct(&c.Database,
		validation.Field(&c.Database.URI, validation.Required),
		validation.Field(&c.Database.Name, validation.Required),
	); err != nil {
		return fmt.Errorf("database config: %w", err)
	}

	if err := validation.ValidateStruct(&c.Logging,
		validation.Field(&c.Logging.Level, validation.Required, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Logging.Format, validation.Required, validation.In(LogFormatText, LogFormatJSON)),
	); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}
