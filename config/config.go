package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var GConfig *Config

const (
	DefaultModel          = "gpt-image-1"
	DefaultUploadMaxBytes = 20 << 20
)

func Init(filePath string) {
	c, err := Load(filePath)
	if err != nil {
		panic(err)
	}
	GConfig = c
}

// Load reads the yaml file at filePath (a missing file is not an error), then
// applies environment overrides. A .env file in the working directory is
// loaded first when present.
func Load(filePath string) (*Config, error) {
	_ = godotenv.Load()

	c := Default()
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		if err == nil {
			if err := yaml.Unmarshal(data, c); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", filePath, err)
			}
		}
	}
	c.applyEnv()
	if err := c.Verify(); err != nil {
		return nil, err
	}
	return c, nil
}

func Default() *Config {
	return &Config{
		OpenAI: OpenAI{Model: DefaultModel},
		Upload: Upload{MaxBytes: DefaultUploadMaxBytes},
		Log: Log{
			LogLevel:      "info",
			LogMaxSize:    100,
			LogMaxBackups: 3,
			LogMaxAge:     28,
		},
	}
}

type Config struct {
	OpenAI `yaml:"openai"`
	Upload `yaml:"upload"`
	Log    `yaml:"log"`
}

// Verify checks values that would otherwise fail later at request time.
// A missing api key is allowed: it is reported per request.
func (c *Config) Verify() error {
	if c.OpenAI.Model == "" {
		return fmt.Errorf("openai.model must not be empty")
	}
	if c.OpenAI.Timeout != "" {
		if _, err := time.ParseDuration(c.OpenAI.Timeout); err != nil {
			return fmt.Errorf("invalid openai.timeout %q: %w", c.OpenAI.Timeout, err)
		}
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload.max_bytes must be positive")
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		c.OpenAI.BaseURL = v
	}
	if v := os.Getenv("OPENAI_IMAGE_MODEL"); v != "" {
		c.OpenAI.Model = v
	}
	if v := os.Getenv("OPENAI_TIMEOUT"); v != "" {
		c.OpenAI.Timeout = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.LogLevel = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		c.Log.LogFile = v
	}
}

type OpenAI struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"` // empty: transport default
}

// TimeoutDuration returns zero when no timeout is configured.
func (o OpenAI) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(o.Timeout)
	return d
}

type Upload struct {
	MaxBytes int64 `yaml:"max_bytes"`
}

type Log struct {
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	LogMaxSize    int    `yaml:"log_max_size"`    // MB
	LogMaxBackups int    `yaml:"log_max_backups"` // files
	LogMaxAge     int    `yaml:"log_max_age"`     // days
}
