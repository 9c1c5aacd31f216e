package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	LLM      LLMConfig      `yaml:"llm"`
	Store    StoreConfig    `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0,lte=65535"`
	// StaticDir overrides the embedded pages when set.
	StaticDir string `yaml:"static_dir"`
}

type LLMConfig struct {
	Provider       string `yaml:"provider" validate:"oneof=gemini openai mock"`
	BaseURL        string `yaml:"base_url"`
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model" validate:"required"`
	TimeoutSeconds int    `yaml:"timeout_seconds" validate:"gt=0"`
}

type StoreConfig struct {
	Backend string `yaml:"backend" validate:"oneof=file memory mysql postgres sqlite"`
	Path    string `yaml:"path"`
	DSN     string `yaml:"dsn"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

var validate = validator.New()

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 8000},
		Log:    LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		LLM: LLMConfig{
			Provider:       "gemini",
			BaseURL:        "https://api.openai.com",
			Model:          "gemini-2.5-flash-lite",
			TimeoutSeconds: 20,
		},
		Store:    StoreConfig{Backend: "file", Path: "mental_health_ai_data.json"},
		Database: DatabaseConfig{Port: 3306, Name: "mindtree"},
	}
}

func Load(configFile string) *Config {
	c := Default()

	paths := []string{"etc/config.yaml", "/etc/mindtree/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, c)
			break
		}
	}

	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverride(&c.Server.StaticDir, "STATIC_DIR")
	envOverride(&c.LLM.Provider, "LLM_PROVIDER")
	envOverride(&c.LLM.BaseURL, "LLM_BASE_URL")
	envOverride(&c.LLM.Model, "LLM_MODEL")
	envOverride(&c.LLM.APIKey, "LLM_API_KEY")
	if c.LLM.APIKey == "" {
		envOverride(&c.LLM.APIKey, "GEMINI_API_KEY")
	}
	envOverride(&c.Store.Backend, "STORE_BACKEND")
	envOverride(&c.Store.Path, "DATA_FILE")
	envOverride(&c.Store.DSN, "STORE_DSN")
	envOverride(&c.Database.Host, "DB_HOST")
	envOverride(&c.Database.User, "DB_USER")
	envOverride(&c.Database.Password, "DB_PASS")
	envOverride(&c.Database.Name, "DB_NAME")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverrideInt(&c.Database.Port, "DB_PORT")
	envOverrideInt(&c.LLM.TimeoutSeconds, "LLM_TIMEOUT_SECONDS")

	return c
}

// Validate checks field ranges and the cross-field requirements of the
// chosen llm provider and store backend.
func (c *Config) Validate() error {
	if err := c.ValidateStore(); err != nil {
		return err
	}
	if c.LLM.Provider != "mock" && c.LLM.APIKey == "" {
		return errors.New("config: llm.api_key (or GEMINI_API_KEY) is required unless llm.provider=mock")
	}
	return nil
}

// ValidateStore is Validate without the llm credential check, for tools
// that only read or reset the stored document.
func (c *Config) ValidateStore() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Store.Backend {
	case "file":
		if c.Store.Path == "" {
			return errors.New("config: store.path is required for the file backend")
		}
	case "postgres", "sqlite":
		if c.Store.DSN == "" {
			return fmt.Errorf("config: store.dsn is required for the %s backend", c.Store.Backend)
		}
	case "mysql":
		if c.Store.DSN == "" && c.Database.Host == "" {
			return errors.New("config: store.dsn or database.host is required for the mysql backend")
		}
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLM.TimeoutSeconds) * time.Second
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
