package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/flashpapers/internal/srs"
)

type Config struct {
	Data       DataConfig   `mapstructure:"data"`
	Backup     BackupConfig `mapstructure:"backup"`
	Categories []string     `mapstructure:"categories" validate:"min=1"`
	SRS        SRSConfig    `mapstructure:"srs"`
	Server     ServerConfig `mapstructure:"server"`
	Arxiv      ArxivConfig  `mapstructure:"arxiv"`
}

type DataConfig struct {
	Directory    string `mapstructure:"directory" validate:"required"`
	File         string `mapstructure:"file" validate:"required"`
	PDFDirectory string `mapstructure:"pdf_directory" validate:"required"`
}

type BackupConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
	Keep      int    `mapstructure:"keep" validate:"min=1"`
}

type SRSConfig struct {
	InitialEaseFactor   float64 `mapstructure:"initial_ease_factor" validate:"min=1.3"`
	MinimumIntervalDays int     `mapstructure:"minimum_interval_days" validate:"min=1"`
	MaximumIntervalDays int     `mapstructure:"maximum_interval_days" validate:"gtefield=MinimumIntervalDays"`
	EasyBonus           float64 `mapstructure:"easy_bonus" validate:"gt=1"`
	HardPenalty         float64 `mapstructure:"hard_penalty" validate:"gt=0,lt=1"`
}

type ServerConfig struct {
	Address        string   `mapstructure:"address" validate:"required"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type ArxivConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"min=1"`
	RetryCount     int    `mapstructure:"retry_count" validate:"min=0"`
}

// FilePath returns the location of the JSON collection file.
func (c DataConfig) FilePath() string {
	return filepath.Join(c.Directory, c.File)
}

// Parameters converts the scheduling section into engine parameters.
func (c SRSConfig) Parameters() srs.Parameters {
	return srs.Parameters{
		InitialEaseFactor:   c.InitialEaseFactor,
		MinimumIntervalDays: c.MinimumIntervalDays,
		MaximumIntervalDays: c.MaximumIntervalDays,
		EasyBonus:           c.EasyBonus,
		HardPenalty:         c.HardPenalty,
	}
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/flashpapers")
	}

	v.SetDefault("data.directory", "data")
	v.SetDefault("data.file", "flashpapers.json")
	v.SetDefault("data.pdf_directory", filepath.Join("data", "pdfs"))
	v.SetDefault("backup.directory", filepath.Join("data", "backups"))
	v.SetDefault("backup.keep", 10)
	v.SetDefault("categories", []string{"nlp", "computer_vision", "reinforcement_learning", "systems", "theory", "other"})
	v.SetDefault("srs.initial_ease_factor", srs.DefaultParameters.InitialEaseFactor)
	v.SetDefault("srs.minimum_interval_days", srs.DefaultParameters.MinimumIntervalDays)
	v.SetDefault("srs.maximum_interval_days", srs.DefaultParameters.MaximumIntervalDays)
	v.SetDefault("srs.easy_bonus", srs.DefaultParameters.EasyBonus)
	v.SetDefault("srs.hard_penalty", srs.DefaultParameters.HardPenalty)
	v.SetDefault("server.address", "127.0.0.1:8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("arxiv.base_url", "http://export.arxiv.org/api/query")
	v.SetDefault("arxiv.timeout_seconds", 30)
	v.SetDefault("arxiv.retry_count", 3)

	// Bind deployment specific settings to environment variables only (not from config file)
	if err := v.BindEnv("server.address", "FLASHPAPERS_SERVER_ADDRESS"); err != nil {
		return nil, fmt.Errorf("failed to bind FLASHPAPERS_SERVER_ADDRESS environment variable: %w", err)
	}
	if err := v.BindEnv("data.directory", "FLASHPAPERS_DATA_DIRECTORY"); err != nil {
		return nil, fmt.Errorf("failed to bind FLASHPAPERS_DATA_DIRECTORY environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cfg.Validate() > %w", err)
	}

	return &cfg, nil
}

// Validate checks the loaded configuration and returns translated
// field messages when it is invalid.
func (c *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator() > %w", err)
	}

	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validate.Struct() > %w", err)
		}
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, fieldError.Translate(trans))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(messages, ", "))
	}
	return nil
}
